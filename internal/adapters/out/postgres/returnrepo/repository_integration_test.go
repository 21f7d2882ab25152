package returnrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/returnrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/returns"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// ReturnRepositoryIntegrationTestSuite provides integration tests for
// ReturnRepository using PostgreSQL containers.
type ReturnRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *returnrepo.GormReturnRepository
	tracker    *MockAggregateTracker
}

func (suite *ReturnRepositoryIntegrationTestSuite) SetupSuite() {
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
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnItemDTO{},
	))
}

func (suite *ReturnRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE returns, return_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = returnrepo.NewGormReturnRepository(suite.db, suite.tracker)
}

func (suite *ReturnRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()

	original := suite.createTestReturn()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Once()

	suite.Require().NoError(suite.repository.Add(ctx, original))
	suite.Positive(original.ID())

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(int64(42), retrieved.OrderID())
	suite.Equal(int64(7), retrieved.UserID())
	suite.Equal(returns.StatusPending, retrieved.Status())
	suite.Equal("damaged on arrival", retrieved.Reason())
	suite.True(retrieved.RefundAmount().IsEqual(kernel.MustMoneyFromString("100.00")))

	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal(int64(1), retrieved.Items()[0].OrderItemID())
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.Equal(returns.ConditionDamaged, retrieved.Items()[0].Condition())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestGet_NonExistentReturn_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 99999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestUpdate_ApprovedWithComment_PersistsStatusAndTrail() {
	ctx := context.Background()

	testReturn := suite.createTestReturn()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testReturn).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testReturn))

	now := time.Now().UTC()
	suite.Require().NoError(testReturn.UpdateStatus(returns.StatusApproved, now))
	testReturn.AppendAdminComment("refund scheduled", now)
	suite.Require().NoError(suite.repository.Update(ctx, testReturn))

	retrieved, err := suite.repository.Get(ctx, testReturn.ID())
	suite.Require().NoError(err)

	suite.Equal(returns.StatusApproved, retrieved.Status())
	suite.Contains(retrieved.Comments(), "Admin comment: refund scheduled")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReturnRepositoryIntegrationTestSuite) TestUpdate_NonExistentReturn_ReturnsNotFoundError() {
	ctx := context.Background()

	item, err := returns.RestoreItem(1, 1, 2, "damaged", returns.ConditionDamaged)
	suite.Require().NoError(err)

	missing, err := returns.RestoreReturn(
		424242, 42, 7,
		returns.StatusPending,
		"damaged on arrival", "",
		kernel.Zero(),
		time.Now().UTC(), time.Now().UTC(),
		[]*returns.Item{item},
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestReturn builds a pending return against order 42 with one damaged line.
func (suite *ReturnRepositoryIntegrationTestSuite) createTestReturn() *returns.Return {
	item, err := returns.NewItem(1, 2, 2, "damaged", returns.ConditionDamaged)
	suite.Require().NoError(err)

	testReturn, err := returns.NewReturn(
		42, 7, "damaged on arrival", "box was crushed",
		[]*returns.Item{item},
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testReturn.SetRefundAmount(kernel.MustMoneyFromString("100.00")))

	return testReturn
}

func TestReturnRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReturnRepositoryIntegrationTestSuite))
}
