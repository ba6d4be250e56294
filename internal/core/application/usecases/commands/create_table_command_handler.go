package commands

import (
	"context"
	"errors"

	"tableservice/internal/core/domain/model/table"
	"tableservice/internal/pkg/errs"
)

// CreateTableCommandHandler registers a new table. Table numbers are unique
// within the venue.
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the table. Returns an already-exists error when another
// table carries the same number.
func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (*table.Table, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.TableRepository().GetByNumber(ctx, cmd.TableNumber())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("tableNumber", cmd.TableNumber())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	aggregate, err := table.NewTable(cmd.TableID(), cmd.TableNumber(), cmd.Capacity())
	if err != nil {
		return nil, err
	}

	if err = uow.TableRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
