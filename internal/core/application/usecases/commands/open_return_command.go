package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/identity"
	"shop/internal/core/domain/model/returns"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrOpenReturnCommandIsNotConstructed = errs.NewValueIsRequiredError(
		"OpenReturnCommand must be created via NewOpenReturnCommand constructor",
	)
	ErrReturnLineIsNotConstructed = errs.NewValueIsRequiredError(
		"ReturnLine must be created via NewReturnLine constructor",
	)
	ErrReturnReasonIsRequired = errs.NewValueIsRequiredError("reason")
	ErrReturnLinesAreRequired = errs.NewValueIsRequiredError("returnLines")
)

// ReturnLine is one requested line of a return: which order line is coming
// back, how many units, and in what declared condition.
type ReturnLine struct {
	orderItemID int64
	quantity    int
	reason      string
	condition   returns.ItemCondition

	guard guard.ConstructorGuard
}

// NewReturnLine creates a return request line.
// Validates identifiers, quantity, and that the condition is one of the
// enumerated values. The quantity cap against the ordered quantity is applied
// later, once the order is loaded.
func NewReturnLine(orderItemID int64, quantity int, reason string, condition returns.ItemCondition) (ReturnLine, error) {
	if orderItemID <= 0 {
		return ReturnLine{}, errs.NewValueIsInvalidErrorWithCause(
			"orderItemID",
			fmt.Errorf("%d is not a positive identifier", orderItemID),
		)
	}
	if quantity <= 0 {
		return ReturnLine{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := condition.Validate(); err != nil {
		return ReturnLine{}, err
	}

	return ReturnLine{
		orderItemID: orderItemID,
		quantity:    quantity,
		reason:      reason,
		condition:   condition,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through the constructor.
func (l ReturnLine) Validate() error {
	return l.guard.Validate(ErrReturnLineIsNotConstructed)
}

// OrderItemID returns the identifier of the order line being returned.
func (l ReturnLine) OrderItemID() int64 {
	return l.orderItemID
}

// Quantity returns the quantity being returned.
func (l ReturnLine) Quantity() int {
	return l.quantity
}

// Reason returns the optional per-line reason.
func (l ReturnLine) Reason() string {
	return l.reason
}

// Condition returns the declared condition of the item.
func (l ReturnLine) Condition() returns.ItemCondition {
	return l.condition
}

// OpenReturnCommand represents a customer's request to return items from a
// delivered order.
type OpenReturnCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	orderID  int64
	reason   string
	comments string
	lines    []ReturnLine

	guard guard.ConstructorGuard
}

// NewOpenReturnCommand creates a command to open a return request.
// Validates the actor, the order identifier, that a reason is given, and that
// every line is well formed.
func NewOpenReturnCommand(
	actor identity.Actor,
	orderID int64,
	reason, comments string,
	lines []ReturnLine,
) (OpenReturnCommand, error) {
	returnCommand := OpenReturnCommand{
		comments: comments,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setActor(actor),
		returnCommand.setOrderID(orderID),
		returnCommand.setReason(reason),
		returnCommand.setLines(lines),
	); err != nil {
		return OpenReturnCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOpenReturnCommandIsNotConstructed if validation fails.
func (c OpenReturnCommand) Validate() error {
	return c.guard.Validate(ErrOpenReturnCommandIsNotConstructed)
}

// Actor returns the caller opening the return.
func (c OpenReturnCommand) Actor() identity.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being returned.
func (c OpenReturnCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the customer's stated reason.
func (c OpenReturnCommand) Reason() string {
	return c.reason
}

// Comments returns the optional free-text note.
func (c OpenReturnCommand) Comments() string {
	return c.comments
}

// Lines returns the requested return lines.
func (c OpenReturnCommand) Lines() []ReturnLine {
	return c.lines
}

func (c *OpenReturnCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *OpenReturnCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID",
			fmt.Errorf("%d is not a positive identifier", orderID),
		)
	}

	c.orderID = orderID
	return nil
}

func (c *OpenReturnCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReturnReasonIsRequired
	}

	c.reason = reason
	return nil
}

func (c *OpenReturnCommand) setLines(lines []ReturnLine) error {
	if len(lines) == 0 {
		return ErrReturnLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
