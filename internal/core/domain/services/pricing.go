package services

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/returns"
)

// DefaultDeliverySurcharge is the flat delivery fee added to every order total
// when no other surcharge is configured.
func DefaultDeliverySurcharge() kernel.Money {
	return kernel.MustMoneyFromString("10.00")
}

// Pricing is a domain service that computes money amounts spanning the order
// and return aggregates.
//
// Business rules:
//   - An order total is the sum of its line subtotals plus the flat delivery
//     surcharge, computed once at checkout
//   - A refund is the sum of snapshot price times returned quantity over the
//     return's lines, computed once when the return is opened
//   - Both computations use the prices snapshotted on the order, so later
//     catalog changes never affect them
type Pricing struct {
	deliverySurcharge kernel.Money
}

// NewPricing creates a Pricing service with the given delivery surcharge.
func NewPricing(deliverySurcharge kernel.Money) (Pricing, error) {
	if err := deliverySurcharge.Validate(); err != nil {
		return Pricing{}, err
	}
	return Pricing{deliverySurcharge: deliverySurcharge}, nil
}

// DeliverySurcharge returns the configured flat delivery fee.
func (p Pricing) DeliverySurcharge() kernel.Money {
	return p.deliverySurcharge
}

// OrderTotal computes the total for an order: the sum of its line subtotals
// plus the delivery surcharge.
func (p Pricing) OrderTotal(o *order.Order) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := p.deliverySurcharge
	for _, item := range o.Items() {
		total = total.Add(item.Subtotal())
	}
	return total, nil
}

// RefundAmount computes the refund owed for a set of return lines against
// their order: snapshot price times returned quantity, summed.
//
// Every line must reference an item of the given order; an unknown reference
// yields an ObjectNotFoundError.
func (p Pricing) RefundAmount(o *order.Order, lines []*returns.Item) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	refund := kernel.Zero()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return kernel.Money{}, err
		}

		orderItem, err := o.Item(line.OrderItemID())
		if err != nil {
			return kernel.Money{}, err
		}

		refund = refund.Add(orderItem.Price().MulInt(line.Quantity()))
	}
	return refund, nil
}
