// Package errs provides standardized error types for the ordering service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used across the application and adapter layers.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// Domain-specific errors (price validation, status transitions) live next to
// their aggregates; this package covers the generic cases shared by all
// layers: missing values, invalid values, out-of-range values, and lookups
// that found nothing.
package errs
