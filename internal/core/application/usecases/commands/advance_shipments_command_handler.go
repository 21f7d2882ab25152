package commands

import (
	"context"
	"fmt"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/metrics"
)

const transitLocation = "Regional Distribution Hub"

// AdvanceShipmentsCommandHandler appends in-transit checkpoints to every
// shipped order's delivery trail. All updates occur within a single
// transaction, matching the periodic sweep pattern of a courier feed poller.
type AdvanceShipmentsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceShipmentsCommandHandler creates a handler for tracking sweeps.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceShipmentsCommandHandler(uowFactory OrderUoWFactory) AdvanceShipmentsCommandHandler {
	return AdvanceShipmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking sweep command.
// Retrieves all orders in shipped status and appends one synthetic in-transit
// record to each, updating the order's current location. Any failure
// increments the operation error counter once.
func (h AdvanceShipmentsCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentsCommand) error {
	if err := h.handle(ctx, cmd); err != nil {
		metrics.OperationErrors.WithLabelValues("advance_shipments").Inc()
		return err
	}
	return nil
}

func (h AdvanceShipmentsCommandHandler) handle(ctx context.Context, cmd AdvanceShipmentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllInStatus(ctx, order.Shipped)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, o := range orders {
		description := fmt.Sprintf("Shipment %s passed a checkpoint", o.TrackingNumber())
		if err = o.RecordTransitEvent(transitLocation, description, now); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
