// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes the
// zero value detectable, so objects that bypassed their constructor fail
// validation instead of silently carrying invalid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard maintains an internal flag that is only set
// when the object is created through NewConstructorGuard; a zero-value struct
// fails validation.
//
// Example usage:
//
//	var ErrRateNotConstructed = errors.New("Rate must be created via NewRate")
//
//	type Rate struct {
//	    percent float64
//	    guard   ConstructorGuard
//	}
//
//	func NewRate(percent float64) (Rate, error) {
//	    if percent < 0 {
//	        return Rate{}, errors.New("percent cannot be negative")
//	    }
//	    return Rate{percent: percent, guard: NewConstructorGuard()}, nil
//	}
//
//	func (r Rate) Validate() error {
//	    return r.guard.Validate(ErrRateNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects, validationError for zero values,
// and ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
