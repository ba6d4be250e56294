package order

import (
	"fmt"

	"tableservice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> preparing ──> ready ──> delivered
//	    │           │           │
//	    └───────────┴───────────┴──────> cancelled
//
// The forward path is driven by the generic status update, which accepts any
// non-cancelled target without enforcing that it is the immediate successor
// (kitchen displays may jump a step). Cancellation is only reachable through
// the explicit cancel operation. Delivered and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is ready to be served.
	Ready

	// Delivered indicates the order reached the table. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn. Terminal. Reachable only
	// through the explicit cancel operation.
	Cancelled
)

// getStatusStrings returns the wire representation of every Status value,
// including Unknown, for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the lowercase wire representation of a status.
// Returns an error for anything outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the five valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Implements fmt.Stringer; safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the order still needs kitchen or service
// attention: pending, preparing, or ready.
func (s Status) IsActive() bool {
	switch s {
	case Pending, Preparing, Ready:
		return true
	case Unknown, Delivered, Cancelled:
		return false
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ActiveStatuses returns the statuses counted as active, in lifecycle order.
// Shared by the active-order listing and its SQL filter.
func ActiveStatuses() []Status {
	return []Status{Pending, Preparing, Ready}
}

// ChangeTo validates a generic status-update target. Any valid status is
// accepted except Cancelled, which must go through the cancel operation.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if target == Cancelled {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cancellation must use the cancel operation, not a status update"))
	}

	return target, nil
}

// Cancel transitions to Cancelled. Valid from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot be cancelled", s.String()))
	}

	return Cancelled, nil
}
