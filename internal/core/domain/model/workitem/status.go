package workitem

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of a work item.
//
// Allowed transitions:
//
//	Pending    -> InProgress, Cancelled
//	InProgress -> Completed
//	Completed  -> (none)
//	Cancelled  -> (none)
//
// The zero value is Unknown and never valid.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota

	// Pending is the initial state: created and waiting for the provider.
	Pending

	// InProgress means the provider accepted and is working on it.
	InProgress

	// Completed is terminal. It is the only state in which an order can be rated.
	Completed

	// Cancelled is terminal. Reached by explicit cancellation or by the
	// auto-cancel sweep.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions is the lifecycle table. Terminal states map to an empty set.
func getTransitions() map[Status]map[Status]struct{} {
	//nolint:exhaustive // Unknown has no outgoing transitions
	return map[Status]map[Status]struct{}{
		Pending:    {InProgress: {}, Cancelled: {}},
		InProgress: {Completed: {}},
		Completed:  {},
		Cancelled:  {},
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed, Cancelled}
}

// ParseStatus converts a wire name ("pending", "in_progress", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name; anything outside the enum prints as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// IsOpen reports whether the item still awaits or receives work.
func (s Status) IsOpen() bool {
	return s == Pending || s == InProgress
}

func (s Status) CanTransitionTo(next Status) bool {
	_, ok := getTransitions()[s][next]
	return ok
}

// TransitionTo returns next if the table allows it, otherwise an
// *InvalidTransitionError.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}
