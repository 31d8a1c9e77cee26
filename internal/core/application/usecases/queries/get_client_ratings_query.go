package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetClientRatingsQueryIsNotConstructed = errors.New(
	"GetClientRatingsQuery must be created via NewGetClientRatingsQuery constructor",
)

// GetClientRatingsQuery lists the ratings a client has given, newest first.
type GetClientRatingsQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetClientRatingsQuery(clientID kernel.UUID) (GetClientRatingsQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientRatingsQuery{}, err
	}
	return GetClientRatingsQuery{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientRatingsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientRatingsQueryIsNotConstructed)
}

func (q GetClientRatingsQuery) ClientID() kernel.UUID {
	return q.clientID
}
