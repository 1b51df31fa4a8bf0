// Package tax holds the tax rate value object. A single rate is active at a
// time; setting a new rate replaces the prior one, and each order snapshots
// the rate in force at creation or update time.
package tax

import (
	"fmt"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

// ErrRateIsNotConstructed is returned when a Rate was not created through
// NewRate or ZeroRate, preventing use of unvalidated zero values.
var ErrRateIsNotConstructed = errs.NewValueIsRequiredError("Rate must be created via NewRate or ZeroRate")

// Rate is an immutable value object representing a tax rate percentage.
// A Rate is always non-negative; negative inputs are rejected at construction.
//
// Example:
//
//	rate, err := tax.NewRate(7.25)
//	if err != nil {
//	    // handle validation error
//	}
//	taxAmount := subtotal * (rate.Percent() / 100)
type Rate struct { //nolint:recvcheck //using for validation
	percent float64

	guard guard.ConstructorGuard
}

// NewRate creates a tax rate from a percentage value.
// Returns an error if percent is negative.
func NewRate(percent float64) (Rate, error) {
	if percent < 0 {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("tax rate",
			fmt.Errorf("%v is negative", percent))
	}

	return Rate{
		percent: percent,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ZeroRate returns the 0% rate used when no rate has been configured.
// Reading an unset tax registry never errors; it defaults to zero.
func ZeroRate() Rate {
	rate, _ := NewRate(0)
	return rate
}

// Validate ensures the rate was created through a constructor.
func (r Rate) Validate() error {
	return r.guard.Validate(ErrRateIsNotConstructed)
}

// Percent returns the rate as a percentage value, e.g. 7.25 for 7.25%.
func (r Rate) Percent() float64 {
	return r.percent
}

// ApplyTo returns the tax amount for the given subtotal.
func (r Rate) ApplyTo(subtotal float64) float64 {
	return subtotal * (r.percent / 100)
}

// IsEqual compares two rates by their percentage value.
func (r Rate) IsEqual(other Rate) bool {
	return r.percent == other.percent
}
