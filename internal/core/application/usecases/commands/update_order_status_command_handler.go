package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/metrics"
)

// UpdateOrderStatusResult carries back the order's state after an operator
// transition, including the tracking number assigned on the move to shipped.
type UpdateOrderStatusResult struct {
	OrderID        int64
	Status         order.Status
	TrackingNumber string
}

// UpdateOrderStatusCommandHandler handles operator-driven status transitions.
// Only admins may run it. Every transition appends a delivery trail record,
// and the first transition into shipped assigns the tracking number.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for operator status
// transitions. Requires an OrderUoWFactory for transactional persistence and
// an event publisher notified after commit.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
// Gates on the admin role, loads the order, applies the transition with its
// trail record, and persists the aggregate. Publishes an order event after
// the transaction commits. Any failure increments the operation error counter
// once.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	result, err := h.handle(ctx, cmd)
	if err != nil {
		metrics.OperationErrors.WithLabelValues("update_order_status").Inc()
	}
	return result, err
}

func (h UpdateOrderStatusCommandHandler) handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err := cmd.Actor().RequireAdmin("update order status"); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	now := time.Now().UTC()
	if err = o.AdminSetStatus(cmd.Status(), cmd.Location(), cmd.Description(), now); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	h.publisher.Publish(ctx, ports.OrderEvent{
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		Status:     o.Status().String(),
		OccurredAt: now,
	})

	return UpdateOrderStatusResult{
		OrderID:        o.ID(),
		Status:         o.Status(),
		TrackingNumber: o.TrackingNumber(),
	}, nil
}
