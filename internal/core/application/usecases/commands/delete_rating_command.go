package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteRatingCommandIsNotConstructed = errors.New(
	"DeleteRatingCommand must be created via NewDeleteRatingCommand constructor",
)

type DeleteRatingCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRatingCommand(id kernel.UUID) (DeleteRatingCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteRatingCommand{}, err
	}
	return DeleteRatingCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRatingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRatingCommandIsNotConstructed)
}

func (c DeleteRatingCommand) ID() kernel.UUID { return c.id }
