package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/returns"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/metrics"
)

// OpenReturnResult carries back the identifiers the storefront needs after a
// return request is opened.
type OpenReturnResult struct {
	ReturnID     int64
	RefundAmount kernel.Money
}

// OpenReturnCommandHandler handles opening return requests.
// A return can only target a delivered order owned by the caller. The refund
// is computed once from the order's snapshot prices and frozen on the return.
//
// Ownership: a foreign order id yields ObjectNotFoundError rather than
// UnauthorizedError, so the API does not leak which order ids exist.
type OpenReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	pricing    services.Pricing
}

// NewOpenReturnCommandHandler creates a handler for opening returns.
// Requires a ReturnUoWFactory for transactional persistence and the pricing
// service for refund computation.
func NewOpenReturnCommandHandler(
	uowFactory ReturnUoWFactory,
	pricing services.Pricing,
) OpenReturnCommandHandler {
	return OpenReturnCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the open-return command.
// Loads the order, verifies ownership and that it is delivered, validates
// every line against the order's items, computes the refund, and persists the
// pending return. Any failure increments the operation error counter once.
func (h OpenReturnCommandHandler) Handle(ctx context.Context, cmd OpenReturnCommand) (OpenReturnResult, error) {
	result, err := h.handle(ctx, cmd)
	if err != nil {
		metrics.OperationErrors.WithLabelValues("open_return").Inc()
	}
	return result, err
}

func (h OpenReturnCommandHandler) handle(ctx context.Context, cmd OpenReturnCommand) (OpenReturnResult, error) {
	if err := cmd.Validate(); err != nil {
		return OpenReturnResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OpenReturnResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	returnRepo := uow.ReturnRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return OpenReturnResult{}, err
	}

	if !cmd.Actor().IsAdmin() && !cmd.Actor().Owns(o.UserID()) {
		return OpenReturnResult{}, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if o.Status() != order.Delivered {
		return OpenReturnResult{}, errs.NewInvalidTransitionError("order", o.Status().String(), "return")
	}

	items, err := returnItemsFromLines(o, cmd.Lines())
	if err != nil {
		return OpenReturnResult{}, err
	}

	now := time.Now().UTC()
	ret, err := returns.NewReturn(o.ID(), o.UserID(), cmd.Reason(), cmd.Comments(), items, now)
	if err != nil {
		return OpenReturnResult{}, err
	}

	refund, err := h.pricing.RefundAmount(o, items)
	if err != nil {
		return OpenReturnResult{}, err
	}
	if err = ret.SetRefundAmount(refund); err != nil {
		return OpenReturnResult{}, err
	}

	if err = returnRepo.Add(ctx, ret); err != nil {
		return OpenReturnResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OpenReturnResult{}, err
	}

	metrics.ReturnsOpened.Inc()

	return OpenReturnResult{ReturnID: ret.ID(), RefundAmount: refund}, nil
}

// returnItemsFromLines resolves every requested line against the order's items
// and caps the quantity at the ordered quantity.
func returnItemsFromLines(o *order.Order, lines []ReturnLine) ([]*returns.Item, error) {
	items := make([]*returns.Item, 0, len(lines))
	for _, line := range lines {
		orderItem, err := o.Item(line.OrderItemID())
		if err != nil {
			return nil, err
		}

		item, err := returns.NewItem(
			line.OrderItemID(), line.Quantity(), orderItem.Quantity(), line.Reason(), line.Condition(),
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
	return items, nil
}
