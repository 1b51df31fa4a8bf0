// Package errs provides standardized error types for the café ordering backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for validation failures (ValueIsRequiredError,
// ValueIsInvalidError, ValueIsOutOfRangeError), missing objects
// (ObjectNotFoundError), and the order lifecycle failure modes
// (ForbiddenError, InvalidTransitionError, AlreadyCompletedError,
// InsufficientInventoryError, OwnershipMismatchError, ConflictError).
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
