// Package errs provides the shared error classes of the marketplace service.
//
// Each class follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) to match with errors.Is
//   - a struct carrying the details, created with or without a cause
//   - Unwrap returning the sentinel
//
// Domain packages compose their own kind sentinels with these classes using
// fmt.Errorf("%w: %w", kind, class) so callers can match either one.
package errs
