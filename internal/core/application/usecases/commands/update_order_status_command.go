package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/identity"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an operator moving an order through its
// lifecycle. Location and description are optional; the aggregate fills in
// warehouse defaults when they are absent.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	orderID     int64
	status      order.Status
	location    string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to set an order's status.
// Validates the actor, the order identifier, and that the status is one of
// the enumerated values.
func NewUpdateOrderStatusCommand(
	actor identity.Actor,
	orderID int64,
	status order.Status,
	location, description string,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setActor(actor),
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the caller requesting the transition.
func (c UpdateOrderStatusCommand) Actor() identity.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to move.
func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Location returns the optional location for the delivery trail record.
func (c UpdateOrderStatusCommand) Location() string {
	return c.location
}

// Description returns the optional description for the delivery trail record.
func (c UpdateOrderStatusCommand) Description() string {
	return c.description
}

func (c *UpdateOrderStatusCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID",
			fmt.Errorf("%d is not a positive identifier", orderID),
		)
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
