package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrAdvanceShipmentsCommandIsNotConstructed = errors.New(
	"AdvanceShipmentsCommand must be created via NewAdvanceShipmentsCommand constructor",
)

// AdvanceShipmentsCommand triggers a tracking sweep over all shipped orders.
// Each one receives a synthetic in-transit checkpoint on its delivery trail,
// standing in for a courier feed.
//
// Example:
//
//	cmd := NewAdvanceShipmentsCommand()
//	handler := NewAdvanceShipmentsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("shipment sweep failed: %v", err)
//	}
type AdvanceShipmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceShipmentsCommand creates a new command to trigger a tracking sweep.
// This is a parameterless command invoked periodically by the job scheduler.
func NewAdvanceShipmentsCommand() AdvanceShipmentsCommand {
	return AdvanceShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceShipmentsCommandIsNotConstructed if validation fails.
func (c *AdvanceShipmentsCommand) Validate() error {
	return c.guard.Validate(
		ErrAdvanceShipmentsCommandIsNotConstructed,
	)
}
