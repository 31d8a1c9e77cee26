package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completedOrder(t *testing.T, completedAt time.Time) *workitem.Order {
	t.Helper()
	return restoreItem[workitem.OrderKind](t, workitem.Completed, completedAt.Add(-time.Hour), &completedAt)
}

func ratingCommandFor(t *testing.T, o *workitem.Order, score int, comment *string) commands.CreateRatingCommand {
	t.Helper()
	cmd, err := commands.NewCreateRatingCommand(kernel.NewUUID(), o.ID(), o.ClientID(), o.ProviderID(), score, comment)
	require.NoError(t, err)
	return cmd
}

func newRatingGuard() services.RatingEligibilityGuard {
	return services.NewRatingEligibilityGuard(services.DefaultTemporalPolicy())
}

func TestNewCreateRatingCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateRatingCommand(kernel.UUID{}, kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 5, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateRatingCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	order := completedOrder(t, now.Add(-29*24*time.Hour))
	comment := "quick and tidy"
	cmd := ratingCommandFor(t, order, 5, &comment)

	orderRepo := new(MockWorkItemRepository[workitem.OrderKind])
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW[workitem.OrderKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("GetByOrderID", ctx, order.ID()).Return(nil, errs.NewObjectNotFoundError("rating", order.ID())).Once(),
		ratingRepo.On("Add", ctx, mock.AnythingOfType("*rating.Rating")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	// When
	h := commands.NewCreateRatingCommandHandler(factory, newRatingGuard(), fixedClock{now})
	r, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.True(t, r.ID().IsEqual(cmd.ID()))
	assert.True(t, r.OrderID().IsEqual(order.ID()))
	assert.Equal(t, 5, r.Score().Int())
	assert.Equal(t, comment, r.Comment().String())
	assert.Equal(t, now, r.CreatedAt())
	orderRepo.AssertExpectations(t)
	ratingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRatingCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCreateRatingCommand(kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(), 5, nil)

	orderRepo := new(MockWorkItemRepository[workitem.OrderKind])
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW[workitem.OrderKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRatingCommandHandler(factory, newRatingGuard(), fixedClock{now})
	r, err := h.Handle(ctx, cmd)

	assert.Nil(t, r)
	assert.ErrorIs(t, err, rating.ErrOrderNotFound)
	ratingRepo.AssertNotCalled(t, "GetByOrderID", mock.Anything, mock.Anything)
	ratingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateRatingCommandHandler_Handle_AlreadyRated(t *testing.T) {
	ctx := t.Context()
	order := completedOrder(t, now.Add(-time.Hour))
	cmd := ratingCommandFor(t, order, 4, nil)
	score, _ := kernel.NewScore(3)
	existing, err := rating.New(kernel.NewUUID(), order.ID(), order.ClientID(), order.ProviderID(), score, nil, now.Add(-time.Minute))
	require.NoError(t, err)

	orderRepo := new(MockWorkItemRepository[workitem.OrderKind])
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW[workitem.OrderKind])
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("GetByOrderID", ctx, order.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRatingCommandHandler(factory, newRatingGuard(), fixedClock{now})
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, rating.ErrOrderAlreadyRated)
	ratingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateRatingCommandHandler_Handle_ConcurrentInsertReportedAsAlreadyRated(t *testing.T) {
	ctx := t.Context()
	order := completedOrder(t, now.Add(-time.Hour))
	cmd := ratingCommandFor(t, order, 4, nil)

	orderRepo := new(MockWorkItemRepository[workitem.OrderKind])
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW[workitem.OrderKind])
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("RatingRepository").Return(ratingRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once()
	ratingRepo.On("GetByOrderID", ctx, order.ID()).Return(nil, errs.NewObjectNotFoundError("rating", order.ID())).Once()
	ratingRepo.On("Add", ctx, mock.Anything).
		Return(rating.NewRejectionError(rating.OrderAlreadyRated, order.ID().String(), "unique violation")).Once()
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRatingCommandHandler(factory, newRatingGuard(), fixedClock{now})
	_, err := h.Handle(ctx, cmd)

	assert.Equal(t, rating.OrderAlreadyRated, rating.KindOf(err))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateRatingCommandHandler_Handle_PeriodExpired(t *testing.T) {
	ctx := t.Context()
	order := completedOrder(t, now.Add(-30*24*time.Hour-time.Second))
	cmd := ratingCommandFor(t, order, 5, nil)

	orderRepo := new(MockWorkItemRepository[workitem.OrderKind])
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW[workitem.OrderKind])
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("RatingRepository").Return(ratingRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once()
	ratingRepo.On("GetByOrderID", ctx, order.ID()).Return(nil, errs.NewObjectNotFoundError("rating", order.ID())).Once()
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRatingCommandHandler(factory, newRatingGuard(), fixedClock{now})
	_, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, rating.ErrRatingPeriodExpired)
}

func TestCreateRatingCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCreateRatingCommand(kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(), 5, nil)

	orderRepo := new(MockWorkItemRepository[workitem.OrderKind])
	uow := new(MockUoW[workitem.OrderKind])
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, orderID).Return(nil, errors.New("connection reset")).Once()
	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRatingCommandHandler(factory, newRatingGuard(), fixedClock{now})
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	assert.Equal(t, rating.UnknownRejection, rating.KindOf(err))
}
