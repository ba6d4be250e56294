package commands

import (
	"errors"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/pkg/guard"
)

var (
	ErrCreateTableCommandIsNotConstructed = errors.New(
		"CreateTableCommand must be created via NewCreateTableCommand constructor",
	)
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

// CreateTableCommand registers a new dining table in the venue.
type CreateTableCommand struct {
	tableID     kernel.UUID
	tableNumber int
	capacity    int

	guard guard.ConstructorGuard
}

func NewCreateTableCommand(tableID kernel.UUID, tableNumber int, capacity int) (CreateTableCommand, error) {
	cmd := CreateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setTableNumber(tableNumber),
		cmd.setCapacity(capacity),
	)
	if err != nil {
		return CreateTableCommand{}, err
	}

	return cmd, nil
}

func (c *CreateTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	c.tableID = tableID
	return nil
}

func (c *CreateTableCommand) setTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return ErrTableNumberIsInvalid
	}
	c.tableNumber = tableNumber
	return nil
}

func (c *CreateTableCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}
	c.capacity = capacity
	return nil
}

func (c *CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c *CreateTableCommand) TableNumber() int {
	return c.tableNumber
}

func (c *CreateTableCommand) Capacity() int {
	return c.capacity
}

func (c *CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}
