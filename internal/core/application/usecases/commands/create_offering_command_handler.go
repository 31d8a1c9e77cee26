package commands

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
)

type CreateOfferingCommandHandler struct {
	uowFactory OfferingUoWFactory
}

func NewCreateOfferingCommandHandler(uowFactory OfferingUoWFactory) CreateOfferingCommandHandler {
	return CreateOfferingCommandHandler{uowFactory: uowFactory}
}

func (h CreateOfferingCommandHandler) Handle(ctx context.Context, cmd CreateOfferingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	offering, err := catalog.NewOffering(cmd.ID(), cmd.ProviderID(), cmd.Title(), cmd.Description(), cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OfferingRepository().Add(ctx, offering); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
