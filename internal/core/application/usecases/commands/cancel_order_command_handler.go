package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/metrics"
)

// CancelOrderResult identifies the order that was cancelled.
type CancelOrderResult struct {
	OrderID int64
}

// CancelOrderCommandHandler handles customer-initiated order cancellation.
// Cancelling an order releases the stock its lines had reserved; the status
// change and the stock release share one transaction.
//
// Ownership: a customer can only cancel their own orders. A foreign order id
// yields ObjectNotFoundError rather than UnauthorizedError, so the API does
// not leak which order ids exist.
type CancelOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
// Requires a CheckoutUoWFactory since both the order and the stock ledger
// change, and an event publisher notified after commit.
func NewCancelOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Loads the order, verifies ownership, runs the status transition, releases
// the reserved stock, and appends the cancellation record to the delivery
// trail. Publishes an order event after the transaction commits. Any failure
// increments the operation error counter once.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	result, err := h.handle(ctx, cmd)
	if err != nil {
		metrics.OperationErrors.WithLabelValues("cancel_order").Inc()
	}
	return result, err
}

func (h CancelOrderCommandHandler) handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CancelOrderResult{}, err
	}

	if !cmd.Actor().IsAdmin() && !cmd.Actor().Owns(o.UserID()) {
		return CancelOrderResult{}, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	now := time.Now().UTC()
	if err = o.Cancel(now); err != nil {
		return CancelOrderResult{}, err
	}

	releases, err := reservationsFromItems(o.Items())
	if err != nil {
		return CancelOrderResult{}, err
	}
	if err = productRepo.ReleaseAll(ctx, releases); err != nil {
		return CancelOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return CancelOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	metrics.OrdersCancelled.Inc()
	h.publisher.Publish(ctx, ports.OrderEvent{
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		Status:     o.Status().String(),
		OccurredAt: now,
	})

	return CancelOrderResult{OrderID: o.ID()}, nil
}

// reservationsFromItems converts order lines back into stock ledger lines for
// release.
func reservationsFromItems(items []*order.Item) ([]product.Reservation, error) {
	reservations := make([]product.Reservation, 0, len(items))
	for _, item := range items {
		r, err := product.NewReservation(item.ProductID(), item.Quantity())
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, nil
}
