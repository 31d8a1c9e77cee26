package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateWorkItemStatusCommandIsNotConstructed = errors.New(
	"UpdateWorkItemStatusCommand must be created via NewUpdateWorkItemStatusCommand constructor",
)

// UpdateWorkItemStatusCommand requests a lifecycle transition.
type UpdateWorkItemStatusCommand[K workitem.Kind] struct {
	id     kernel.UUID
	status workitem.Status

	guard guard.ConstructorGuard
}

func NewUpdateWorkItemStatusCommand[K workitem.Kind](
	id kernel.UUID,
	status workitem.Status,
) (UpdateWorkItemStatusCommand[K], error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return UpdateWorkItemStatusCommand[K]{}, err
	}

	return UpdateWorkItemStatusCommand[K]{id: id, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateWorkItemStatusCommand[K]) Validate() error {
	return c.guard.Validate(ErrUpdateWorkItemStatusCommandIsNotConstructed)
}

func (c UpdateWorkItemStatusCommand[K]) ID() kernel.UUID         { return c.id }
func (c UpdateWorkItemStatusCommand[K]) Status() workitem.Status { return c.status }
