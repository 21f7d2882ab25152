package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, userID int64, status order.Status) *order.Order {
	t.Helper()

	item, err := order.RestoreItem(1, 10, 2, kernel.MustMoneyFromString("50.00"))
	require.NoError(t, err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		42, userID, status,
		now, now,
		"Main St", "courier",
		kernel.MustMoneyFromString("110.00"), "", order.InitialLocation, nil,
		[]*order.Item{item}, nil,
	)
	require.NoError(t, err)
	return o
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(customerActor(t), 42)
	require.NoError(t, err)

	o := storedOrder(t, 7, order.Pending)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(42)).Return(o, nil).Once(),
		productRepo.On("ReleaseAll", mock.Anything, mock.AnythingOfType("[]product.Reservation")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderEvent")).Once()

	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.OrderID)
	assert.Equal(t, order.Cancelled, o.Status())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForeignOrderLooksMissing(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(customerActor(t), 42)
	require.NoError(t, err)

	o := storedOrder(t, 99, order.Pending) // owned by someone else

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(42)).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.Pending, o.Status())
}

func TestCancelOrderCommandHandler_Handle_ShippedOrderRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(customerActor(t), 42)
	require.NoError(t, err)

	o := storedOrder(t, 7, order.Shipped)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(42)).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Shipped, o.Status())
	productRepo.AssertNotCalled(t, "ReleaseAll", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(customerActor(t), 42)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("orderID", 42)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelOrderCommandHandler_Handle_FailureCountedOnce(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(customerActor(t), 42)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("orderID", 42)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	counter := metrics.OperationErrors.WithLabelValues("cancel_order")
	before := testutil.ToFloat64(counter)

	h := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
