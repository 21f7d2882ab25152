package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errs.NewValueIsRequiredError(
		"OrderLine must be created via NewOrderLine constructor",
	)
	ErrShippingAddressIsRequired = errs.NewValueIsRequiredError("shippingAddress")
	ErrDeliveryMethodIsRequired  = errs.NewValueIsRequiredError("deliveryMethod")
	ErrOrderLinesAreRequired     = errs.NewValueIsRequiredError("orderLines")
)

// OrderLine is one requested line of a checkout: a product and a quantity.
type OrderLine struct {
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderLine creates a checkout line.
// Validates that the product identifier and quantity are positive.
func NewOrderLine(productID int64, quantity int) (OrderLine, error) {
	if productID <= 0 {
		return OrderLine{}, errs.NewValueIsInvalidErrorWithCause(
			"productID",
			fmt.Errorf("%d is not a positive identifier", productID),
		)
	}
	if quantity <= 0 {
		return OrderLine{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return OrderLine{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (l OrderLine) ProductID() int64 {
	return l.productID
}

// Quantity returns the requested quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// CreateOrderCommand represents a checkout request: who is buying, where to
// ship, and which product quantities to reserve.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, "221B Baker Street", "courier", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing, publisher)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d created, total %s", result.OrderID, result.Total)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor           identity.Actor
	shippingAddress string
	deliveryMethod  string
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the actor, that address and method are not empty, and that every
// line is well formed. Returns an error if any validation fails.
func NewCreateOrderCommand(
	actor identity.Actor,
	shippingAddress, deliveryMethod string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(actor),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setDeliveryMethod(deliveryMethod),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the caller placing the order.
func (c CreateOrderCommand) Actor() identity.Actor {
	return c.actor
}

// ShippingAddress returns the destination address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// DeliveryMethod returns the chosen delivery method.
func (c CreateOrderCommand) DeliveryMethod() string {
	return c.deliveryMethod
}

// Lines returns the requested checkout lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return ErrShippingAddressIsRequired
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setDeliveryMethod(deliveryMethod string) error {
	if deliveryMethod == "" {
		return ErrDeliveryMethodIsRequired
	}

	c.deliveryMethod = deliveryMethod
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
