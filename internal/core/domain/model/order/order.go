package order

import (
	"errors"
	"fmt"
	"time"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a placed order. It references its table by
// the human-facing table number (validated at creation time; not required to
// remain valid afterward), carries immutable line items, and tracks the
// status lifecycle.
//
// Invariants:
//   - the total equals the sum of item subtotals at creation time and is
//     never recomputed
//   - line items cannot change after construction
//   - status changes only through ChangeStatus and Cancel
type Order struct {
	id          kernel.UUID
	tableNumber int
	items       []Item
	status      Status
	total       float64
	waiterName  string
	note        string
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a new pending order for the given table. The total is
// computed from the item price snapshots here and frozen. The note is an
// optional order-level free-text request.
func NewOrder(id kernel.UUID, tableNumber int, items []Item, waiterName string, note string) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		note:          note,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setItems(items),
		o.setWaiterName(waiterName),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.total += item.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
// The stored total is taken as-is: it was frozen at creation and must not be
// recomputed from the items.
func RestoreOrder(
	id kernel.UUID,
	tableNumber int,
	items []Item,
	status Status,
	total float64,
	waiterName string,
	note string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setItems(items),
		o.setWaiterName(waiterName),
		o.setStatus(status),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableNumber returns the number of the table the order was placed against.
func (o *Order) TableNumber() int {
	return o.tableNumber
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total frozen at creation time.
func (o *Order) Total() float64 {
	return o.total
}

// WaiterName returns the name of the waiter who placed the order.
func (o *Order) WaiterName() string {
	return o.waiterName
}

// Note returns the optional order-level note; empty means none.
func (o *Order) Note() string {
	return o.note
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-updated timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus applies a generic status update. Any valid non-cancelled
// target is accepted; the coordinator deliberately does not enforce that the
// target is the immediate successor of the current status. Touches the
// last-updated timestamp.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel marks the order cancelled. Fails on delivered or already cancelled
// orders. Touches the last-updated timestamp.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", number))
	}
	o.tableNumber = number
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setWaiterName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("waiterName")
	}
	o.waiterName = name
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%v is negative", total))
	}
	o.total = total
	return nil
}
