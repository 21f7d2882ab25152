package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/identity"
	"shop/internal/core/domain/model/returns"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrUpdateReturnStatusCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"UpdateReturnStatusCommand must be created via NewUpdateReturnStatusCommand constructor",
)

// UpdateReturnStatusCommand represents an operator deciding a return request:
// approving, rejecting, or completing it. The optional comments are appended
// to the return's comment trail.
type UpdateReturnStatusCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	returnID int64
	status   returns.Status
	comments string

	guard guard.ConstructorGuard
}

// NewUpdateReturnStatusCommand creates a command to set a return's status.
// Validates the actor, the return identifier, and that the status is one of
// the enumerated values.
func NewUpdateReturnStatusCommand(
	actor identity.Actor,
	returnID int64,
	status returns.Status,
	comments string,
) (UpdateReturnStatusCommand, error) {
	statusCommand := UpdateReturnStatusCommand{
		comments: comments,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setActor(actor),
		statusCommand.setReturnID(returnID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateReturnStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateReturnStatusCommandIsNotConstructed if validation fails.
func (c UpdateReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnStatusCommandIsNotConstructed)
}

// Actor returns the caller deciding the return.
func (c UpdateReturnStatusCommand) Actor() identity.Actor {
	return c.actor
}

// ReturnID returns the identifier of the return to move.
func (c UpdateReturnStatusCommand) ReturnID() int64 {
	return c.returnID
}

// Status returns the target status.
func (c UpdateReturnStatusCommand) Status() returns.Status {
	return c.status
}

// Comments returns the optional operator note.
func (c UpdateReturnStatusCommand) Comments() string {
	return c.comments
}

func (c *UpdateReturnStatusCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateReturnStatusCommand) setReturnID(returnID int64) error {
	if returnID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"returnID",
			fmt.Errorf("%d is not a positive identifier", returnID),
		)
	}

	c.returnID = returnID
	return nil
}

func (c *UpdateReturnStatusCommand) setStatus(status returns.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
