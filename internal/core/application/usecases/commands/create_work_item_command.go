package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/guard"
)

var ErrCreateWorkItemCommandIsNotConstructed = errors.New(
	"CreateWorkItemCommand must be created via NewCreateWorkItemCommand constructor",
)

// CreateWorkItemCommand asks to open a new order or service request for a
// client against a catalog offering. The provider is taken from the offering.
//
//	cmd, err := NewCreateWorkItemCommand[workitem.OrderKind](
//	    kernel.NewUUID(), clientID, offeringID, 150.50)
type CreateWorkItemCommand[K workitem.Kind] struct {
	id            kernel.UUID
	clientID      kernel.UUID
	serviceID     kernel.UUID
	chargedAmount kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateWorkItemCommand[K workitem.Kind](
	id, clientID, serviceID kernel.UUID,
	chargedAmount float64,
) (CreateWorkItemCommand[K], error) {
	amount, amountErr := kernel.NewMoney(chargedAmount)
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		serviceID.Validate(),
		amountErr,
	); err != nil {
		return CreateWorkItemCommand[K]{}, err
	}

	return CreateWorkItemCommand[K]{
		id:            id,
		clientID:      clientID,
		serviceID:     serviceID,
		chargedAmount: amount,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWorkItemCommand[K]) Validate() error {
	return c.guard.Validate(ErrCreateWorkItemCommandIsNotConstructed)
}

func (c CreateWorkItemCommand[K]) ID() kernel.UUID             { return c.id }
func (c CreateWorkItemCommand[K]) ClientID() kernel.UUID       { return c.clientID }
func (c CreateWorkItemCommand[K]) ServiceID() kernel.UUID      { return c.serviceID }
func (c CreateWorkItemCommand[K]) ChargedAmount() kernel.Money { return c.chargedAmount }
