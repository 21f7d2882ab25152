package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer's request to cancel their order.
// Cancellation is only possible before fulfilment starts; the status machine
// rejects it once the order is processing or on the road.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates the actor and that the order identifier is positive.
func NewCancelOrderCommand(actor identity.Actor, orderID int64) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setActor(actor),
		cancelCommand.setOrderID(orderID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Actor returns the caller requesting the cancellation.
func (c CancelOrderCommand) Actor() identity.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CancelOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID",
			fmt.Errorf("%d is not a positive identifier", orderID),
		)
	}

	c.orderID = orderID
	return nil
}
