package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// AutoCancelExpiredCommandHandler cancels work items that stayed Pending past
// the auto-cancel window.
//
// Candidate ids are listed without locks, then each item is loaded under a row
// lock in its own transaction and cancelled through the regular transition.
// An item that cannot be loaded is reported and the sweep moves on.
// An item that was started or cancelled in between is skipped, not failed, so
// the sweep can be re-run at any time.
type AutoCancelExpiredCommandHandler[K workitem.Kind] struct {
	uowFactory WorkItemUoWFactory[K]
	policy     services.TemporalPolicy
	clock      ports.Clock
}

func NewAutoCancelExpiredCommandHandler[K workitem.Kind](
	uowFactory WorkItemUoWFactory[K],
	policy services.TemporalPolicy,
	clock ports.Clock,
) AutoCancelExpiredCommandHandler[K] {
	return AutoCancelExpiredCommandHandler[K]{uowFactory: uowFactory, policy: policy, clock: clock}
}

// Handle returns the counts together with the joined errors of items that
// could not be processed; one failing item does not stop the sweep.
func (h AutoCancelExpiredCommandHandler[K]) Handle(
	ctx context.Context,
	cmd AutoCancelExpiredCommand[K],
) (AutoCancelResult, error) {
	var result AutoCancelResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	now := h.clock.Now()

	candidates, err := h.uowFactory.Create().WorkItemRepository().
		GetPendingIDsCreatedBefore(ctx, h.policy.PendingCutoff(now), cmd.BatchSize())
	if err != nil {
		return result, err
	}

	var errList []error
	for _, id := range candidates {
		cancelled, cancelErr := h.cancel(ctx, id, now)
		switch {
		case cancelErr != nil:
			errList = append(errList, fmt.Errorf("%s %s: %w", workitem.KindName[K](), id, cancelErr))
		case cancelled:
			result.Cancelled++
		default:
			result.Skipped++
		}
	}

	return result, errors.Join(errList...)
}

func (h AutoCancelExpiredCommandHandler[K]) cancel(ctx context.Context, id kernel.UUID, now time.Time) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkItemRepository()

	item, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return false, err
	}

	cancelled, err := h.policy.AutoCancel(item, now)
	if errors.Is(err, workitem.ErrInvalidTransition) {
		return false, nil
	}
	if err != nil || !cancelled {
		return false, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
