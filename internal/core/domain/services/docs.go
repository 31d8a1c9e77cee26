// Package services provides the domain services of the marketplace: rules
// that span a work item and the clock, or a work item and its rating, and so
// do not belong to a single aggregate.
//
// The package includes:
//   - TemporalPolicy: the auto-cancel and rating windows
//   - RatingEligibilityGuard: the ordered checks a rating request must pass
//
// Services are pure: they take "now" as an argument and perform no I/O.
package services
