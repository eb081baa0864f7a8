// Package errs provides standardized error types for the parcel tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per domain error kind:
//   - ObjectNotFoundError: a requested entity does not exist
//   - AccessForbiddenError: an authenticated caller fails a role or ownership check
//   - StateConflictError: a state precondition is violated
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is semantically invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter relies on this classification to map domain failures to
// status codes (404/403/409/400); anything outside the taxonomy is treated
// as an infrastructure failure.
package errs
