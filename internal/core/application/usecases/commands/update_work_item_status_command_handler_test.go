package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateWorkItemStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewUpdateWorkItemStatusCommand[workitem.OrderKind](id, workitem.Completed)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ID())
	assert.Equal(t, workitem.Completed, cmd.Status())

	_, err = commands.NewUpdateWorkItemStatusCommand[workitem.OrderKind](id, workitem.Unknown)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateWorkItemStatusCommandHandler_Handle_Complete(t *testing.T) {
	// Given
	ctx := t.Context()
	item := restoreItem[workitem.OrderKind](t, workitem.InProgress, now.Add(-time.Hour), nil)
	cmd, _ := commands.NewUpdateWorkItemStatusCommand[workitem.OrderKind](item.ID(), workitem.Completed)

	repo := new(MockWorkItemRepository[workitem.OrderKind])
	uow := new(MockUoW[workitem.OrderKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, item.ID()).Return(item, nil).Once(),
		repo.On("Update", ctx, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockWorkItemUoWFactory[workitem.OrderKind])
	factory.On("Create").Return(uow).Once()

	// When
	h := commands.NewUpdateWorkItemStatusCommandHandler[workitem.OrderKind](factory, fixedClock{now})
	updated, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, workitem.Completed, updated.Status())
	require.NotNil(t, updated.CompletedAt())
	assert.Equal(t, now, *updated.CompletedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateWorkItemStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	completedAt := now.Add(-time.Hour)
	item := restoreItem[workitem.ServiceRequestKind](t, workitem.Completed, now.Add(-2*time.Hour), &completedAt)
	cmd, _ := commands.NewUpdateWorkItemStatusCommand[workitem.ServiceRequestKind](item.ID(), workitem.Cancelled)

	repo := new(MockWorkItemRepository[workitem.ServiceRequestKind])
	uow := new(MockUoW[workitem.ServiceRequestKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, item.ID()).Return(item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockWorkItemUoWFactory[workitem.ServiceRequestKind])
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateWorkItemStatusCommandHandler[workitem.ServiceRequestKind](factory, fixedClock{now})
	updated, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, workitem.ErrInvalidTransition)
	assert.Nil(t, updated)
	assert.Equal(t, workitem.Completed, item.Status())
	assert.Equal(t, completedAt, *item.CompletedAt())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateWorkItemStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateWorkItemStatusCommand[workitem.OrderKind](id, workitem.InProgress)

	repo := new(MockWorkItemRepository[workitem.OrderKind])
	uow := new(MockUoW[workitem.OrderKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockWorkItemUoWFactory[workitem.OrderKind])
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateWorkItemStatusCommandHandler[workitem.OrderKind](factory, fixedClock{now})
	_, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateWorkItemStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	item := restoreItem[workitem.OrderKind](t, workitem.Pending, now.Add(-time.Hour), nil)
	cmd, _ := commands.NewUpdateWorkItemStatusCommand[workitem.OrderKind](item.ID(), workitem.InProgress)

	repo := new(MockWorkItemRepository[workitem.OrderKind])
	uow := new(MockUoW[workitem.OrderKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, item.ID()).Return(item, nil).Once(),
		repo.On("Update", ctx, item).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockWorkItemUoWFactory[workitem.OrderKind])
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateWorkItemStatusCommandHandler[workitem.OrderKind](factory, fixedClock{now})
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
