// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the core:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input,
//     never retried
//   - ObjectNotFoundError: a referenced order or station log entry is absent
//   - ConflictError: a concurrent-update race was detected, safe to retry
//   - StoreUnavailableError: storage timeout or connection failure, retried
//     by the caller with backoff
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Adapters map the sentinels onto their transport's status codes and never
// leak raw storage error text to end users; the cause is carried for logs and
// debug fields only.
package errs
