package workitem

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrSameClientAndProvider  = errors.New("client and provider must be different users")
	ErrCompletionDateMismatch = errors.New("completion date does not match status")
)

// InvalidTransitionError describes a rejected status change.
type InvalidTransitionError struct {
	Entity string
	ID     string
	From   Status
	To     Status
}

func (e *InvalidTransitionError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
	}
	return fmt.Sprintf("%s: %s %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.ID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
