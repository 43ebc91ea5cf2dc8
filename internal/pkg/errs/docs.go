// Package errs provides the standardized error types shared by the fulfillment
// service. Every type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the offending parameter and value
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps these sentinels onto status codes, so domain and
// application code should return them instead of ad-hoc errors wherever a
// caller is expected to react to the failure.
package errs
