package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetRatingByOrderQueryIsNotConstructed = errors.New(
	"GetRatingByOrderQuery must be created via NewGetRatingByOrderQuery constructor",
)

// GetRatingByOrderQuery fetches the rating left on one order. An order has at
// most one.
type GetRatingByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRatingByOrderQuery(orderID kernel.UUID) (GetRatingByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRatingByOrderQuery{}, err
	}
	return GetRatingByOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRatingByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetRatingByOrderQueryIsNotConstructed)
}

func (q GetRatingByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
