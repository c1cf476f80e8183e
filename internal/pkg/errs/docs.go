// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The package includes error types for the common failure classes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a referenced object does not exist
//   - StatusNotAllowedError: an order status outside the allowed set
//   - OrderAlreadyAssignedError: a rider-assignment race was lost
//   - StoreUnavailableError: the backing store failed transiently and
//     retries were exhausted
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Transport adapters rely on errors.Is against the sentinels to map
// failures onto response codes, so every new error class must unwrap to
// exactly one sentinel.
package errs
