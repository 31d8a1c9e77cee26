package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedRating(t *testing.T) *rating.Rating {
	t.Helper()
	score, err := kernel.NewScore(2)
	require.NoError(t, err)
	comment, err := kernel.NewComment("late")
	require.NoError(t, err)
	r, err := rating.New(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), score, &comment, now.Add(-time.Hour))
	require.NoError(t, err)
	return r
}

func TestNewUpdateRatingCommand(t *testing.T) {
	score, empty, blank := 4, "", "  "

	t.Run("should keep unset fields unchanged", func(t *testing.T) {
		cmd, err := commands.NewUpdateRatingCommand(kernel.NewUUID(), &score, nil)

		require.NoError(t, err)
		require.NotNil(t, cmd.Score())
		assert.Equal(t, 4, cmd.Score().Int())
		_, changed := cmd.Comment()
		assert.False(t, changed)
	})

	t.Run("should clear the comment with an empty string", func(t *testing.T) {
		cmd, err := commands.NewUpdateRatingCommand(kernel.NewUUID(), nil, &empty)

		require.NoError(t, err)
		comment, changed := cmd.Comment()
		assert.True(t, changed)
		assert.Nil(t, comment)
	})

	t.Run("should reject a blank comment", func(t *testing.T) {
		_, err := commands.NewUpdateRatingCommand(kernel.NewUUID(), nil, &blank)

		assert.ErrorIs(t, err, kernel.ErrInvalidText)
	})

	t.Run("should require at least one change", func(t *testing.T) {
		_, err := commands.NewUpdateRatingCommand(kernel.NewUUID(), nil, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateRatingCommandHandler_Handle(t *testing.T) {
	// Given
	ctx := t.Context()
	r := storedRating(t)
	score, empty := 5, ""
	cmd, err := commands.NewUpdateRatingCommand(r.ID(), &score, &empty)
	require.NoError(t, err)

	repo := new(MockRatingRepository)
	uow := new(MockUoW[workitem.OrderKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RatingRepository").Return(repo).Once(),
		repo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		repo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	// When
	h := commands.NewUpdateRatingCommandHandler(factory, fixedClock{now})
	updated, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Score().Int())
	assert.Nil(t, updated.Comment())
	assert.Equal(t, now, updated.UpdatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateRatingCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	score := 3
	cmd, _ := commands.NewUpdateRatingCommand(id, &score, nil)

	repo := new(MockRatingRepository)
	uow := new(MockUoW[workitem.OrderKind])
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RatingRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("rating", id)).Once()
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateRatingCommandHandler(factory, fixedClock{now})
	_, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteRatingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteRatingCommand(id)
	require.NoError(t, err)

	repo := new(MockRatingRepository)
	uow := new(MockUoW[workitem.OrderKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RatingRepository").Return(repo).Once(),
		repo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteRatingCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteRatingCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockRatingUoWFactory)
	h := commands.NewDeleteRatingCommandHandler(factory)

	err := h.Handle(t.Context(), commands.DeleteRatingCommand{})

	assert.ErrorIs(t, err, commands.ErrDeleteRatingCommandIsNotConstructed)
}
