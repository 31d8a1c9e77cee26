package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrChangeOfferingStatusCommandIsNotConstructed = errors.New(
	"ChangeOfferingStatusCommand must be created via NewChangeOfferingStatusCommand constructor",
)

// ChangeOfferingStatusCommand activates or deactivates an offering. Existing
// work items are not affected.
type ChangeOfferingStatusCommand struct {
	id     kernel.UUID
	status catalog.Status

	guard guard.ConstructorGuard
}

func NewChangeOfferingStatusCommand(id kernel.UUID, status catalog.Status) (ChangeOfferingStatusCommand, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return ChangeOfferingStatusCommand{}, err
	}
	return ChangeOfferingStatusCommand{id: id, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeOfferingStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOfferingStatusCommandIsNotConstructed)
}

func (c ChangeOfferingStatusCommand) ID() kernel.UUID        { return c.id }
func (c ChangeOfferingStatusCommand) Status() catalog.Status { return c.status }
