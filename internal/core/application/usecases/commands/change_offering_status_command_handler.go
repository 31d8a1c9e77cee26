package commands

import (
	"context"
)

type ChangeOfferingStatusCommandHandler struct {
	uowFactory OfferingUoWFactory
}

func NewChangeOfferingStatusCommandHandler(uowFactory OfferingUoWFactory) ChangeOfferingStatusCommandHandler {
	return ChangeOfferingStatusCommandHandler{uowFactory: uowFactory}
}

func (h ChangeOfferingStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOfferingStatusCommand) error {
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

	repo := uow.OfferingRepository()

	offering, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = offering.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, offering); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
