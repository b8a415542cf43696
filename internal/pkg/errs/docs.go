// Package errs provides standardized error types for the garment production application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside of its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - CapacityExceededError: For when a quantity exceeds the available pool
//   - RangeConflictError: For when serial-number ranges overlap
//   - LockedError: For when a consumed or used object is mutated
//   - PermissionDeniedError: For when a role or seniority gate fails
//   - InvalidStateError: For when a workflow transition starts from the wrong state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, which is how
// the HTTP adapter maps them onto status codes.
package errs
