// Package errs provides standardized error types for the dispatch pipeline.
// Every constructor returns a typed error that unwraps to a package level
// sentinel, so callers can classify failures with errors.Is while still
// getting the offending parameter in the message.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a business rule (for example an
//     illegal order status transition)
//   - ValueIsOutOfRangeError: a numeric setting is outside its bounds
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
package errs
