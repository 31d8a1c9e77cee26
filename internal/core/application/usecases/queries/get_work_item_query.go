package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/guard"
)

var ErrGetWorkItemQueryIsNotConstructed = errors.New(
	"GetWorkItemQuery must be created via NewGetWorkItemQuery constructor",
)

// GetWorkItemQuery fetches one work item of kind K by id.
type GetWorkItemQuery[K workitem.Kind] struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWorkItemQuery[K workitem.Kind](id kernel.UUID) (GetWorkItemQuery[K], error) {
	if err := id.Validate(); err != nil {
		return GetWorkItemQuery[K]{}, err
	}
	return GetWorkItemQuery[K]{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWorkItemQuery[K]) Validate() error {
	return q.guard.Validate(ErrGetWorkItemQueryIsNotConstructed)
}

func (q GetWorkItemQuery[K]) ID() kernel.UUID {
	return q.id
}
