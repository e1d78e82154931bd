// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order lifecycle engine:
//   - ObjectNotFoundError: an order is missing, or not owned by the caller
//     (the two cases are intentionally indistinguishable)
//   - InvalidReferenceError: an order line references an unknown catalog item
//   - IllegalTransitionError: an order status regression was attempted
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures on input values
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Validation-class errors are expected, recoverable-by-caller conditions.
// Store failures are not part of this taxonomy: they are wrapped and propagated
// unchanged so the boundary layer can surface them as opaque internal failures.
package errs
