package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/guard"
)

var ErrGetOpenWorkItemsQueryIsNotConstructed = errors.New(
	"GetOpenWorkItemsQuery must be created via NewGetOpenWorkItemsQuery constructor",
)

// GetOpenWorkItemsQuery lists Pending and InProgress items of kind K,
// optionally restricted to one client and/or one provider.
type GetOpenWorkItemsQuery[K workitem.Kind] struct {
	clientID   *kernel.UUID
	providerID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOpenWorkItemsQuery[K workitem.Kind](clientID, providerID *kernel.UUID) (GetOpenWorkItemsQuery[K], error) {
	var errList []error
	if clientID != nil {
		errList = append(errList, clientID.Validate())
	}
	if providerID != nil {
		errList = append(errList, providerID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return GetOpenWorkItemsQuery[K]{}, err
	}

	return GetOpenWorkItemsQuery[K]{
		clientID:   clientID,
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOpenWorkItemsQuery[K]) Validate() error {
	return q.guard.Validate(ErrGetOpenWorkItemsQueryIsNotConstructed)
}

func (q GetOpenWorkItemsQuery[K]) ClientID() *kernel.UUID   { return q.clientID }
func (q GetOpenWorkItemsQuery[K]) ProviderID() *kernel.UUID { return q.providerID }
