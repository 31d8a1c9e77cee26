package kernel

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	MinScore = 1
	MaxScore = 5
)

var (
	ErrInvalidScore          = errors.New("invalid score")
	ErrScoreIsNotConstructed = errs.NewValueIsRequiredError("score must be created via NewScore")
)

// Score is a rating between MinScore and MaxScore inclusive.
type Score struct {
	value int
	guard guard.ConstructorGuard
}

func NewScore(n int) (Score, error) {
	if n < MinScore || n > MaxScore {
		return Score{}, fmt.Errorf("%w: %w", ErrInvalidScore,
			errs.NewValueIsOutOfRangeError("score", n, MinScore, MaxScore))
	}
	return Score{value: n, guard: guard.NewConstructorGuard()}, nil
}

func (s Score) Validate() error {
	return s.guard.Validate(ErrScoreIsNotConstructed)
}

func (s Score) Int() int {
	return s.value
}

func (s Score) Equal(other Score) bool {
	return s.value == other.value
}

// Stars renders the score as a row of stars.
func (s Score) Stars() string {
	return strings.Repeat("★", s.value)
}
