package kernel

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Field bounds in runes, after trimming.
const (
	TitleMinLen                   = 3
	TitleMaxLen                   = 100
	DescriptionMinLen             = 10
	DescriptionMaxLen             = 2000
	CommentMinLen                 = 1
	CommentMaxLen                 = 1000
	ProfessionalDescriptionMinLen = 1
	ProfessionalDescriptionMaxLen = 500
)

var (
	ErrInvalidText          = errors.New("invalid text")
	ErrTextIsNotConstructed = errs.NewValueIsRequiredError("text must be created via its constructor")
)

// BoundedText is a trimmed string whose length in runes lies within
// [minLen, maxLen]. A maxLen of 0 leaves the upper bound open.
type BoundedText struct {
	value string
	guard guard.ConstructorGuard
}

func NewBoundedText(s string, minLen, maxLen int) (BoundedText, error) {
	return newBoundedText("text", s, minLen, maxLen)
}

func newBoundedText(field, s string, minLen, maxLen int) (BoundedText, error) {
	trimmed := strings.TrimSpace(s)
	n := utf8.RuneCountInString(trimmed)

	if n < minLen || (maxLen > 0 && n > maxLen) {
		var upper any = maxLen
		if maxLen == 0 {
			upper = "unbounded"
		}
		return BoundedText{}, fmt.Errorf("%w: %w", ErrInvalidText,
			errs.NewValueIsOutOfRangeErrorWithCause(field, n, minLen, upper,
				fmt.Errorf("%s length is counted in characters after trimming", field)))
	}

	return BoundedText{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

func (t BoundedText) Validate() error {
	return t.guard.Validate(ErrTextIsNotConstructed)
}

func (t BoundedText) String() string {
	return t.value
}

func (t BoundedText) Len() int {
	return utf8.RuneCountInString(t.value)
}

func (t BoundedText) Equal(other BoundedText) bool {
	return t.value == other.value
}

// Title names a catalog offering.
type Title struct{ BoundedText }

func NewTitle(s string) (Title, error) {
	t, err := newBoundedText("title", s, TitleMinLen, TitleMaxLen)
	return Title{t}, err
}

// Description describes a catalog offering.
type Description struct{ BoundedText }

func NewDescription(s string) (Description, error) {
	t, err := newBoundedText("description", s, DescriptionMinLen, DescriptionMaxLen)
	return Description{t}, err
}

// Comment is the optional free text of a rating.
type Comment struct{ BoundedText }

func NewComment(s string) (Comment, error) {
	t, err := newBoundedText("comment", s, CommentMinLen, CommentMaxLen)
	return Comment{t}, err
}

type ProfessionalDescription struct{ BoundedText }

func NewProfessionalDescription(s string) (ProfessionalDescription, error) {
	t, err := newBoundedText("professional description", s,
		ProfessionalDescriptionMinLen, ProfessionalDescriptionMaxLen)
	return ProfessionalDescription{t}, err
}
