package commands

import (
	"context"

	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/core/ports"
)

type UpdateRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	clock      ports.Clock
}

func NewUpdateRatingCommandHandler(uowFactory RatingUoWFactory, clock ports.Clock) UpdateRatingCommandHandler {
	return UpdateRatingCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateRatingCommandHandler) Handle(ctx context.Context, cmd UpdateRatingCommand) (*rating.Rating, error) {
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

	repo := uow.RatingRepository()

	r, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if score := cmd.Score(); score != nil {
		if err = r.ChangeScore(*score, now); err != nil {
			return nil, err
		}
	}
	if comment, changed := cmd.Comment(); changed {
		if err = r.ChangeComment(comment, now); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
