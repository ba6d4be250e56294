package commands

import (
	"context"

	"tableservice/internal/pkg/errs"
)

// UpdateTableStatusCommandHandler applies a direct status change to a table.
type UpdateTableStatusCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewUpdateTableStatusCommandHandler(uowFactory TableUoWFactory) UpdateTableStatusCommandHandler {
	return UpdateTableStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the table status. Fails with a not-found error when the
// table id does not match any table.
func (h *UpdateTableStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTableStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	matched, err := uow.TableRepository().UpdateStatusByID(ctx, cmd.TableID(), cmd.Status())
	if err != nil {
		return err
	}
	if !matched {
		return errs.NewObjectNotFoundError("tableID", cmd.TableID())
	}

	return uow.Commit(ctx)
}
