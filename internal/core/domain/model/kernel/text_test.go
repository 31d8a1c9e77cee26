package kernel_test

import (
	"strings"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundedText(t *testing.T) {
	t.Run("should trim before measuring", func(t *testing.T) {
		text, err := kernel.NewBoundedText("   hello   ", 1, 5)

		require.NoError(t, err)
		assert.Equal(t, "hello", text.String())
		assert.Equal(t, 5, text.Len())
	})

	t.Run("should count characters rather than bytes", func(t *testing.T) {
		text, err := kernel.NewBoundedText("ñandú", 5, 5)

		require.NoError(t, err)
		assert.Equal(t, 5, text.Len())
	})

	t.Run("should treat zero max as unbounded", func(t *testing.T) {
		_, err := kernel.NewBoundedText(strings.Repeat("x", 10_000), 1, 0)

		assert.NoError(t, err)
	})

	t.Run("should reject text outside bounds", func(t *testing.T) {
		_, err := kernel.NewBoundedText("toolong", 1, 3)

		assert.ErrorIs(t, err, kernel.ErrInvalidText)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name    string
		build   func(string) error
		valid   []string
		invalid []string
	}{
		{
			name:    "title",
			build:   func(s string) error { _, err := kernel.NewTitle(s); return err },
			valid:   []string{"abc", strings.Repeat("t", 100)},
			invalid: []string{"ab", "  ab  ", strings.Repeat("t", 101)},
		},
		{
			name:    "description",
			build:   func(s string) error { _, err := kernel.NewDescription(s); return err },
			valid:   []string{"ten chars!", strings.Repeat("d", 2000)},
			invalid: []string{"too short", strings.Repeat("d", 2001)},
		},
		{
			name:    "comment",
			build:   func(s string) error { _, err := kernel.NewComment(s); return err },
			valid:   []string{"k", strings.Repeat("c", 1000)},
			invalid: []string{"", "   ", strings.Repeat("c", 1001)},
		},
		{
			name:    "professional description",
			build:   func(s string) error { _, err := kernel.NewProfessionalDescription(s); return err },
			valid:   []string{"plumber", strings.Repeat("p", 500)},
			invalid: []string{" ", strings.Repeat("p", 501)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.valid {
				assert.NoError(t, tt.build(s))
			}
			for _, s := range tt.invalid {
				assert.ErrorIs(t, tt.build(s), kernel.ErrInvalidText)
			}
		})
	}
}

func TestComment_KeepsTrimmedValue(t *testing.T) {
	c, err := kernel.NewComment("  great job \n")

	require.NoError(t, err)
	assert.Equal(t, "great job", c.String())
	assert.NoError(t, c.Validate())
}
