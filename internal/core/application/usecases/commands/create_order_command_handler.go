package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
	"shop/internal/pkg/metrics"
)

// CreateOrderResult carries back the identifiers the storefront needs after a
// successful checkout.
type CreateOrderResult struct {
	OrderID int64
	Total   kernel.Money
}

// CreateOrderCommandHandler handles the business logic for checkout.
// Reserves stock for every requested line, snapshots catalog prices onto the
// order, and computes the total. Reservation and order creation share one
// transaction: if any line lacks stock, nothing is reserved and no order
// exists.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing, publisher)
//	cmd, _ := NewCreateOrderCommand(actor, "456 Oak Avenue", "courier", lines)
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // One of the lines could not be reserved
//	    return
//	}
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricing    services.Pricing
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence, the pricing
// service, and an event publisher notified after commit.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	pricing services.Pricing,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		publisher:  publisher,
	}
}

// Handle processes the checkout command.
// Loads the requested products, reserves stock all-or-nothing, creates the
// order with snapshot prices, and computes the total with the delivery
// surcharge. Publishes an order event after the transaction commits. Any
// failure increments the operation error counter once.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	result, err := h.handle(ctx, cmd)
	if err != nil {
		metrics.OperationErrors.WithLabelValues("create_order").Inc()
	}
	return result, err
}

func (h CreateOrderCommandHandler) handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	ids := make([]int64, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		ids = append(ids, line.ProductID())
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return CreateOrderResult{}, err
	}

	byID := make(map[int64]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	reservations, err := reservationsFromLines(cmd.Lines())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = productRepo.ReserveAll(ctx, reservations); err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(cmd.Actor().UserID(), cmd.ShippingAddress(), cmd.DeliveryMethod(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	for _, line := range cmd.Lines() {
		if err = newOrder.AddItem(line.ProductID(), line.Quantity(), byID[line.ProductID()].Price()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	total, err := h.pricing.OrderTotal(newOrder)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = newOrder.SetTotalAmount(total); err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	metrics.OrdersCreated.Inc()
	h.publisher.Publish(ctx, ports.OrderEvent{
		OrderID:    newOrder.ID(),
		UserID:     newOrder.UserID(),
		Status:     newOrder.Status().String(),
		OccurredAt: now,
	})

	return CreateOrderResult{OrderID: newOrder.ID(), Total: total}, nil
}

// reservationsFromLines converts checkout lines into stock reservation lines.
func reservationsFromLines(lines []OrderLine) ([]product.Reservation, error) {
	reservations := make([]product.Reservation, 0, len(lines))
	for _, line := range lines {
		r, err := product.NewReservation(line.ProductID(), line.Quantity())
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, nil
}
