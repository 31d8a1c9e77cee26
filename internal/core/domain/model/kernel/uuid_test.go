package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should generate distinct valid identifiers", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
		assert.NotEqual(t, uuid.Nil, id1.Bytes())
	})
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(canonical)

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.UUIDFromString(canonical)
		b, _ := kernel.UUIDFromString(canonical)

		assert.True(t, a.IsEqual(b))
		assert.Equal(t, a, b)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	src := uuid.New()

	id, err := kernel.UUIDFromBytes(src[:])

	require.NoError(t, err)
	assert.Equal(t, src.String(), id.String())

	_, err = kernel.UUIDFromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}
