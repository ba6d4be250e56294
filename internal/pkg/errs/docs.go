// Package errs provides standardized error types for the table-service
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the application's error taxonomy:
//   - ObjectNotFoundError: unknown order or table identifiers
//   - ObjectAlreadyExistsError: uniqueness conflicts (duplicate table numbers)
//   - ValueIsInvalidError: values that fail validation rules
//   - ValueIsRequiredError: missing required values
//   - ValueIsOutOfRangeError: numeric values outside their allowed range
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Storage failures are deliberately not modeled here: the core propagates
// them unmodified, and the HTTP boundary treats anything outside this
// taxonomy as a server-side failure.
package errs
