package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateRatingCommandHandler rates an order.
//
// The order row is locked for the duration of the transaction so the
// eligibility checks and the insert see the same order state. The guard runs
// with the clock read at submission time.
type CreateRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	guard      services.RatingEligibilityGuard
	clock      ports.Clock
}

func NewCreateRatingCommandHandler(
	uowFactory RatingUoWFactory,
	guard services.RatingEligibilityGuard,
	clock ports.Clock,
) CreateRatingCommandHandler {
	return CreateRatingCommandHandler{uowFactory: uowFactory, guard: guard, clock: clock}
}

func (h CreateRatingCommandHandler) Handle(ctx context.Context, cmd CreateRatingCommand) (*rating.Rating, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	req := cmd.Request()

	order, err := uow.OrderRepository().GetForUpdate(ctx, req.OrderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		order = nil
	} else if err != nil {
		return nil, err
	}

	ratingRepo := uow.RatingRepository()

	var existing *rating.Rating
	if order != nil {
		existing, err = ratingRepo.GetByOrderID(ctx, req.OrderID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	r, err := h.guard.CreateRating(order, existing, req, cmd.ID(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = ratingRepo.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
