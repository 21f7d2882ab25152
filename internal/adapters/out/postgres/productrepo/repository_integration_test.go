package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository, in particular the conditional stock updates backing the
// inventory ledger.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_AssignsIDAndPersists() {
	ctx := context.Background()

	p := suite.createProduct("Keyboard", "19.99", 5)

	retrieved, err := suite.repository.GetByID(ctx, p.ID())
	suite.Require().NoError(err)

	suite.Equal(p.ID(), retrieved.ID())
	suite.Equal("Keyboard", retrieved.Name())
	suite.True(retrieved.Price().IsEqual(kernel.MustMoneyFromString("19.99")))
	suite.Equal(5, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByID_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByID(ctx, 99999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByIDs_AllExist_ReturnsInRequestOrder() {
	ctx := context.Background()

	first := suite.createProduct("Keyboard", "19.99", 5)
	second := suite.createProduct("Mouse", "9.99", 3)

	products, err := suite.repository.GetByIDs(ctx, []int64{second.ID(), first.ID()})
	suite.Require().NoError(err)

	suite.Require().Len(products, 2)
	suite.Equal(second.ID(), products[0].ID())
	suite.Equal(first.ID(), products[1].ID())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByIDs_MissingID_ReturnsNotFoundError() {
	ctx := context.Background()

	existing := suite.createProduct("Keyboard", "19.99", 5)

	products, err := suite.repository.GetByIDs(ctx, []int64{existing.ID(), 99999})

	suite.Nil(products)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserveAndRelease_RoundTripsStock() {
	ctx := context.Background()

	p := suite.createProduct("Keyboard", "19.99", 5)

	line, err := product.NewReservation(p.ID(), 2)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.ReserveAll(ctx, []product.Reservation{line}))
	suite.assertStock(p.ID(), 3)

	suite.Require().NoError(suite.repository.ReleaseAll(ctx, []product.Reservation{line}))
	suite.assertStock(p.ID(), 5)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserveAll_InsufficientStock_ReturnsInsufficientStockError() {
	ctx := context.Background()

	p := suite.createProduct("Keyboard", "19.99", 1)

	line, err := product.NewReservation(p.ID(), 2)
	suite.Require().NoError(err)

	err = suite.repository.ReserveAll(ctx, []product.Reservation{line})
	suite.Require().Error(err)

	var stockErr *errs.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)

	suite.assertStock(p.ID(), 1)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserveAll_UnknownProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	line, err := product.NewReservation(99999, 1)
	suite.Require().NoError(err)

	err = suite.repository.ReserveAll(ctx, []product.Reservation{line})
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserveAll_ConcurrentReservations_NeverOversell() {
	ctx := context.Background()

	p := suite.createProduct("Keyboard", "19.99", 5)

	line, err := product.NewReservation(p.ID(), 3)
	suite.Require().NoError(err)

	// Two reservations of 3 against a stock of 5: exactly one can win.
	const workers = 2
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repository.ReserveAll(ctx, []product.Reservation{line})
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, failed int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}

		failed++
		var stockErr *errs.InsufficientStockError
		suite.Require().ErrorAs(err, &stockErr)
	}

	suite.Equal(1, succeeded)
	suite.Equal(1, failed)
	suite.assertStock(p.ID(), 2)
}

// createProduct persists a product with the given name, price and stock.
func (suite *ProductRepositoryIntegrationTestSuite) createProduct(name, price string, stock int) *product.Product {
	p, err := product.NewProduct(
		name, name+" description",
		kernel.MustMoneyFromString(price),
		stock, "electronics", "",
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	suite.Require().Positive(p.ID())
	return p
}

// assertStock verifies the stored stock level for a product.
func (suite *ProductRepositoryIntegrationTestSuite) assertStock(id int64, expected int) {
	var dto productrepo.ProductDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", id).Error)
	suite.Equal(expected, dto.Stock)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
