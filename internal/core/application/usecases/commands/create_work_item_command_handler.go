package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateWorkItemCommandHandler opens a Pending work item of kind K after
// checking that the referenced offering exists and is active.
type CreateWorkItemCommandHandler[K workitem.Kind] struct {
	uowFactory WorkItemUoWFactory[K]
	clock      ports.Clock
}

func NewCreateWorkItemCommandHandler[K workitem.Kind](
	uowFactory WorkItemUoWFactory[K],
	clock ports.Clock,
) CreateWorkItemCommandHandler[K] {
	return CreateWorkItemCommandHandler[K]{uowFactory: uowFactory, clock: clock}
}

// Handle returns catalog.ErrOfferingNotFound or catalog.ErrOfferingNotActive
// when the offering cannot be contracted.
func (h CreateWorkItemCommandHandler[K]) Handle(ctx context.Context, cmd CreateWorkItemCommand[K]) error {
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

	offering, err := uow.OfferingRepository().Get(ctx, cmd.ServiceID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", catalog.ErrOfferingNotFound, err)
	}
	if err != nil {
		return err
	}

	if err = offering.EnsureContractable(); err != nil {
		return err
	}

	item, err := workitem.New[K](
		cmd.ID(),
		cmd.ClientID(),
		offering.ProviderID(),
		offering.ID(),
		cmd.ChargedAmount(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.WorkItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
