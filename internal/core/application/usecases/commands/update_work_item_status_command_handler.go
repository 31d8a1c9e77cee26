package commands

import (
	"context"

	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/ports"
)

// UpdateWorkItemStatusCommandHandler applies a transition under a row lock:
// read for update, transition, write, commit. A rejected transition returns
// *workitem.InvalidTransitionError and nothing is written.
type UpdateWorkItemStatusCommandHandler[K workitem.Kind] struct {
	uowFactory WorkItemUoWFactory[K]
	clock      ports.Clock
}

func NewUpdateWorkItemStatusCommandHandler[K workitem.Kind](
	uowFactory WorkItemUoWFactory[K],
	clock ports.Clock,
) UpdateWorkItemStatusCommandHandler[K] {
	return UpdateWorkItemStatusCommandHandler[K]{uowFactory: uowFactory, clock: clock}
}

func (h UpdateWorkItemStatusCommandHandler[K]) Handle(
	ctx context.Context,
	cmd UpdateWorkItemStatusCommand[K],
) (*workitem.WorkItem[K], error) {
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

	repo := uow.WorkItemRepository()

	item, err := repo.GetForUpdate(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = item.Transition(cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
