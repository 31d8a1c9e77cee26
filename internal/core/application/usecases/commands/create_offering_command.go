package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOfferingCommandIsNotConstructed = errors.New(
	"CreateOfferingCommand must be created via NewCreateOfferingCommand constructor",
)

// CreateOfferingCommand publishes a new service in the catalog.
type CreateOfferingCommand struct {
	id          kernel.UUID
	providerID  kernel.UUID
	title       kernel.Title
	description kernel.Description
	price       kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateOfferingCommand(
	id, providerID kernel.UUID,
	title, description string,
	price float64,
) (CreateOfferingCommand, error) {
	t, titleErr := kernel.NewTitle(title)
	d, descriptionErr := kernel.NewDescription(description)
	p, priceErr := kernel.NewMoney(price)

	if err := errors.Join(
		id.Validate(),
		providerID.Validate(),
		titleErr,
		descriptionErr,
		priceErr,
	); err != nil {
		return CreateOfferingCommand{}, err
	}

	return CreateOfferingCommand{
		id:          id,
		providerID:  providerID,
		title:       t,
		description: d,
		price:       p,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOfferingCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferingCommandIsNotConstructed)
}

func (c CreateOfferingCommand) ID() kernel.UUID                 { return c.id }
func (c CreateOfferingCommand) ProviderID() kernel.UUID         { return c.providerID }
func (c CreateOfferingCommand) Title() kernel.Title             { return c.title }
func (c CreateOfferingCommand) Description() kernel.Description { return c.description }
func (c CreateOfferingCommand) Price() kernel.Money             { return c.price }
