package postgres_test

import (
	"context"
	"testing"
	"time"

	uow "shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/returnrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// order, product and return repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *uow.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.DeliveryUpdateDTO{},
		&productrepo.ProductDTO{},
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnItemDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, delivery_updates, products, returns, return_items",
	).Error)

	suite.factory = uow.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndStockTogether() {
	ctx := context.Background()

	p := suite.seedProduct(5)

	unit := suite.factory.Create()
	suite.Require().NoError(unit.Begin(ctx))

	line, err := product.NewReservation(p.ID(), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(unit.ProductRepository().ReserveAll(ctx, []product.Reservation{line}))

	testOrder := suite.buildOrder(p.ID())
	suite.Require().NoError(unit.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(unit.Commit(ctx))

	suite.assertOrderCount(1)
	suite.assertStock(p.ID(), 3)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndStockTogether() {
	ctx := context.Background()

	p := suite.seedProduct(5)

	unit := suite.factory.Create()
	suite.Require().NoError(unit.Begin(ctx))

	line, err := product.NewReservation(p.ID(), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(unit.ProductRepository().ReserveAll(ctx, []product.Reservation{line}))

	testOrder := suite.buildOrder(p.ID())
	suite.Require().NoError(unit.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(unit.Rollback(ctx))

	suite.assertOrderCount(0)
	suite.assertStock(p.ID(), 5)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	unit := suite.factory.Create()
	suite.Require().ErrorIs(unit.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	unit := suite.factory.Create()
	suite.Require().ErrorIs(unit.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_DoesNotNestTransactions() {
	ctx := context.Background()

	unit := suite.factory.Create()
	suite.Require().NoError(unit.Begin(ctx))
	suite.Require().NoError(unit.Begin(ctx))
	suite.Require().NoError(unit.Rollback(ctx))
}

// seedProduct persists a product with the given stock outside any transaction.
func (suite *UnitOfWorkIntegrationTestSuite) seedProduct(stock int) *product.Product {
	p, err := product.NewProduct(
		"Keyboard", "mechanical keyboard",
		kernel.MustMoneyFromString("50.00"),
		stock, "electronics", "",
	)
	suite.Require().NoError(err)

	repo := productrepo.NewGormProductRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

// buildOrder creates a pending order with one line referencing the product.
func (suite *UnitOfWorkIntegrationTestSuite) buildOrder(productID int64) *order.Order {
	testOrder, err := order.NewOrder(7, "1 Main St", "standard", time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.AddItem(productID, 2, kernel.MustMoneyFromString("50.00")))
	suite.Require().NoError(testOrder.SetTotalAmount(kernel.MustMoneyFromString("110.00")))
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertStock(id int64, expected int) {
	var dto productrepo.ProductDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", id).Error)
	suite.Equal(expected, dto.Stock)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
