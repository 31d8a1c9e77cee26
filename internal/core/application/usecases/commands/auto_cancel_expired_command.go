package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAutoCancelExpiredCommandIsNotConstructed = errors.New(
	"AutoCancelExpiredCommand must be created via NewAutoCancelExpiredCommand constructor",
)

// AutoCancelExpiredCommand runs one sweep over at most batchSize expired
// pending items of kind K.
type AutoCancelExpiredCommand[K workitem.Kind] struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewAutoCancelExpiredCommand[K workitem.Kind](batchSize int) (AutoCancelExpiredCommand[K], error) {
	if batchSize <= 0 {
		return AutoCancelExpiredCommand[K]{}, errs.NewValueIsInvalidErrorWithCause(
			"batch size", fmt.Errorf("%d is not greater than 0", batchSize))
	}
	return AutoCancelExpiredCommand[K]{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c AutoCancelExpiredCommand[K]) Validate() error {
	return c.guard.Validate(ErrAutoCancelExpiredCommandIsNotConstructed)
}

func (c AutoCancelExpiredCommand[K]) BatchSize() int {
	return c.batchSize
}

// AutoCancelResult counts what a sweep did.
type AutoCancelResult struct {
	Cancelled int
	// Skipped items were expired when listed but had already left Pending
	// by the time their row was locked.
	Skipped int
}
