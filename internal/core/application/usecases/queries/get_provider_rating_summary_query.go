package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetProviderRatingSummaryQueryIsNotConstructed = errors.New(
	"GetProviderRatingSummaryQuery must be created via NewGetProviderRatingSummaryQuery constructor",
)

type GetProviderRatingSummaryQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProviderRatingSummaryQuery(providerID kernel.UUID) (GetProviderRatingSummaryQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderRatingSummaryQuery{}, err
	}
	return GetProviderRatingSummaryQuery{providerID: providerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProviderRatingSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderRatingSummaryQueryIsNotConstructed)
}

func (q GetProviderRatingSummaryQuery) ProviderID() kernel.UUID {
	return q.providerID
}
