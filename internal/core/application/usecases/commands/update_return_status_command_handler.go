package commands

import (
	"context"
	"time"

	"shop/internal/pkg/metrics"
)

// UpdateReturnStatusCommandHandler handles operator decisions on return
// requests. Only admins may run it, and unlike order transitions the returns
// transition table binds operators too: a rejected or completed return cannot
// be reopened.
type UpdateReturnStatusCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewUpdateReturnStatusCommandHandler creates a handler for return decisions.
// Requires a ReturnUoWFactory for transactional persistence.
func NewUpdateReturnStatusCommandHandler(uowFactory ReturnUoWFactory) UpdateReturnStatusCommandHandler {
	return UpdateReturnStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return decision command.
// Gates on the admin role, loads the return, applies the transition, appends
// the operator's comment to the trail, and persists the aggregate. Any
// failure increments the operation error counter once.
func (h UpdateReturnStatusCommandHandler) Handle(ctx context.Context, cmd UpdateReturnStatusCommand) error {
	if err := h.handle(ctx, cmd); err != nil {
		metrics.OperationErrors.WithLabelValues("update_return_status").Inc()
		return err
	}
	return nil
}

func (h UpdateReturnStatusCommandHandler) handle(ctx context.Context, cmd UpdateReturnStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().RequireAdmin("update return status"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	returnRepo := uow.ReturnRepository()

	ret, err := returnRepo.Get(ctx, cmd.ReturnID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = ret.UpdateStatus(cmd.Status(), now); err != nil {
		return err
	}
	ret.AppendAdminComment(cmd.Comments(), now)

	if err = returnRepo.Update(ctx, ret); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
