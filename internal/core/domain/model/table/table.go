// Package table contains the table aggregate and its occupancy status.
//
// A table is identified both by an opaque id (administrative paths) and a
// human-facing table number, unique across all tables. Its status is mutated
// only by order operations and the administrative update path.
package table

import (
	"errors"
	"fmt"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table was not created through
// NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table represents a physical seating unit with its occupancy status.
type Table struct {
	id       kernel.UUID
	number   int
	status   Status
	capacity int
	guests   int

	isConstructed bool
}

// NewTable creates an available, empty table. Number and capacity must be
// positive; number uniqueness is enforced by the registry, not here.
func NewTable(id kernel.UUID, number int, capacity int) (*Table, error) {
	t := &Table{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(id kernel.UUID, number int, status Status, capacity int, guests int) (*Table, error) {
	t := &Table{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setStatus(status),
		t.setCapacity(capacity),
		t.setGuests(guests),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table's opaque identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// IsEqual compares two tables by identifier.
func (t *Table) IsEqual(other *Table) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// Number returns the human-facing table number.
func (t *Table) Number() int {
	return t.number
}

// Status returns the current occupancy status.
func (t *Table) Status() Status {
	return t.status
}

// Capacity returns the seating capacity.
func (t *Table) Capacity() int {
	return t.capacity
}

// Guests returns the current occupant count.
func (t *Table) Guests() int {
	return t.guests
}

// Occupy marks the table occupied. Called when an order is placed against it.
func (t *Table) Occupy() {
	t.status = Occupied
}

// Release marks the table available. Called when an order against it is
// delivered or cancelled, regardless of other active orders on the same
// table (see the registry docs for the known limitation).
func (t *Table) Release() {
	t.status = Available
}

// SetStatus applies an administrative status change after validating it.
func (t *Table) SetStatus(status Status) error {
	return t.setStatus(status)
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", number))
	}
	t.number = number
	return nil
}

func (t *Table) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	t.capacity = capacity
	return nil
}

func (t *Table) setGuests(guests int) error {
	if guests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("guests",
			fmt.Errorf("%d is negative", guests))
	}
	t.guests = guests
	return nil
}
