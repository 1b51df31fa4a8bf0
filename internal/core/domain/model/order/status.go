package order

import (
	"fmt"

	"cafe/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Fulfilled ──> PickedUp
//
// The machine only moves forward: no transition targets Pending, and
// PickedUp is terminal. Transition guards live on the Order aggregate,
// which also knows the caller identity required to authorize them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Pending orders can still be updated or cancelled by the customer.
	Pending

	// Fulfilled indicates staff has prepared the order and decremented
	// stock for every line. The order is waiting for customer pickup.
	Fulfilled

	// PickedUp indicates the customer has collected the order.
	// This is a final state with no further transitions allowed.
	PickedUp
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Fulfilled: "FULFILLED",
		PickedUp:  "PICKED_UP",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Fulfilled: "FULFILLED",
		PickedUp:  "PICKED_UP",
	}
}

// ParseStatus converts a wire-format status string into a Status value.
// The comparison is exact; "PENDING", "FULFILLED" and "PICKED_UP" are the
// only accepted inputs.
func ParseStatus(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", raw))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Fulfilled, PickedUp.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCompleted reports whether the order already passed fulfillment.
// Both Fulfilled and PickedUp count: once staff has prepared the order,
// a second fulfillment request must not decrement stock again.
func (s Status) IsCompleted() bool {
	return s == Fulfilled || s == PickedUp
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == PickedUp
}
