package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetProviderRatingsQueryIsNotConstructed = errors.New(
	"GetProviderRatingsQuery must be created via NewGetProviderRatingsQuery constructor",
)

// GetProviderRatingsQuery lists the ratings of one provider, newest first.
type GetProviderRatingsQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProviderRatingsQuery(providerID kernel.UUID) (GetProviderRatingsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderRatingsQuery{}, err
	}
	return GetProviderRatingsQuery{providerID: providerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProviderRatingsQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderRatingsQueryIsNotConstructed)
}

func (q GetProviderRatingsQuery) ProviderID() kernel.UUID {
	return q.providerID
}
