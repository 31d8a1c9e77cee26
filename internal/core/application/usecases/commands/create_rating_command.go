package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrCreateRatingCommandIsNotConstructed = errors.New(
	"CreateRatingCommand must be created via NewCreateRatingCommand constructor",
)

// CreateRatingCommand carries a client's rating of an order. Score and comment
// are checked by the handler after eligibility, so an ineligible request is
// reported as such even when its score is also out of range.
type CreateRatingCommand struct {
	id      kernel.UUID
	request services.RatingRequest

	guard guard.ConstructorGuard
}

func NewCreateRatingCommand(
	id, orderID, clientID, providerID kernel.UUID,
	score int,
	comment *string,
) (CreateRatingCommand, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		clientID.Validate(),
		providerID.Validate(),
	); err != nil {
		return CreateRatingCommand{}, err
	}

	return CreateRatingCommand{
		id: id,
		request: services.RatingRequest{
			OrderID:    orderID,
			ClientID:   clientID,
			ProviderID: providerID,
			Score:      score,
			Comment:    comment,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRatingCommand) Validate() error {
	return c.guard.Validate(ErrCreateRatingCommandIsNotConstructed)
}

func (c CreateRatingCommand) ID() kernel.UUID                  { return c.id }
func (c CreateRatingCommand) Request() services.RatingRequest { return c.request }
