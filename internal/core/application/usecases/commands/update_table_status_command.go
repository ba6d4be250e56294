package commands

import (
	"errors"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/table"
	"tableservice/internal/pkg/guard"
)

var ErrUpdateTableStatusCommandIsNotConstructed = errors.New(
	"UpdateTableStatusCommand must be created via NewUpdateTableStatusCommand constructor",
)

// UpdateTableStatusCommand sets a table's occupancy status directly, for
// example when staff reserve a table or seat guests without an order.
type UpdateTableStatusCommand struct {
	tableID kernel.UUID
	status  table.Status

	guard guard.ConstructorGuard
}

func NewUpdateTableStatusCommand(tableID kernel.UUID, status table.Status) (UpdateTableStatusCommand, error) {
	cmd := UpdateTableStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setStatus(status),
	)
	if err != nil {
		return UpdateTableStatusCommand{}, err
	}

	return cmd, nil
}

func (c *UpdateTableStatusCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	c.tableID = tableID
	return nil
}

func (c *UpdateTableStatusCommand) setStatus(status table.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateTableStatusCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c *UpdateTableStatusCommand) Status() table.Status {
	return c.status
}

func (c *UpdateTableStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTableStatusCommandIsNotConstructed)
}
