package commands

import (
	"errors"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/order"
	"tableservice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired     = errors.New("at least one item is required")
	ErrWaiterNameIsRequired = errors.New("waiter name is required")
	ErrTableNumberIsInvalid = errors.New("table number must be greater than 0")
)

// CreateOrderCommand represents a request to place a new order against a
// table. Line items arrive already validated (price snapshots taken by the
// boundary from the menu payload it received).
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	tableNumber int
	items       []order.Item
	waiterName  string
	note        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Validates the
// order id, table number, items, and waiter name; the note is optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tableNumber int,
	items []order.Item,
	waiterName string,
	note string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTableNumber(tableNumber),
		cmd.setItems(items),
		cmd.setWaiterName(waiterName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableNumber returns the target table's human-facing number.
func (c CreateOrderCommand) TableNumber() int {
	return c.tableNumber
}

// Items returns the ordered line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// WaiterName returns the name of the waiter placing the order.
func (c CreateOrderCommand) WaiterName() string {
	return c.waiterName
}

// Note returns the optional order-level note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableNumber(number int) error {
	if number <= 0 {
		return ErrTableNumberIsInvalid
	}
	c.tableNumber = number
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setWaiterName(name string) error {
	if name == "" {
		return ErrWaiterNameIsRequired
	}
	c.waiterName = name
	return nil
}
