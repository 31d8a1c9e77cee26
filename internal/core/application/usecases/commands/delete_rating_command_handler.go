package commands

import (
	"context"
)

type DeleteRatingCommandHandler struct {
	uowFactory RatingUoWFactory
}

func NewDeleteRatingCommandHandler(uowFactory RatingUoWFactory) DeleteRatingCommandHandler {
	return DeleteRatingCommandHandler{uowFactory: uowFactory}
}

// Handle removes the rating; a missing rating is errs.ErrObjectNotFound.
func (h DeleteRatingCommandHandler) Handle(ctx context.Context, cmd DeleteRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RatingRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
