package table

import (
	"fmt"

	"tableservice/internal/pkg/errs"
)

// Status represents the occupancy state of a table. Unlike order statuses
// there is no transition machine: order operations flip between available and
// occupied, and the administrative path may set any valid value, including
// reserved.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the table is free for seating.
	Available

	// Occupied means at least one order was recently placed against the table.
	Occupied

	// Reserved means the table is held for a future seating; only the
	// administrative path sets this.
	Reserved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Occupied:  "occupied",
		Reserved:  "reserved",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Occupied:  "occupied",
		Reserved:  "reserved",
	}
}

// StatusFromString parses the lowercase wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid table status", s))
}

// Validate checks that the Status is one of the three valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
