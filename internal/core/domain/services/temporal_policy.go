package services

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/errs"
)

const (
	// DefaultAutoCancelAfter is how long a work item may stay Pending.
	DefaultAutoCancelAfter = 48 * time.Hour

	// DefaultRatingWindow is how long after completion an order can be rated.
	DefaultRatingWindow = 30 * 24 * time.Hour
)

// PendingItem is the view of a work item the auto-cancel rule needs.
type PendingItem interface {
	Status() workitem.Status
	CreatedAt() time.Time
}

// CancellableItem is a PendingItem that can be transitioned.
type CancellableItem interface {
	PendingItem
	Transition(to workitem.Status, now time.Time) error
}

// TemporalPolicy evaluates the two time-based rules of the lifecycle.
//
// Both windows are compared on millisecond timestamps and both boundaries are
// inclusive: an item pending for exactly the auto-cancel window is expired,
// and an order completed exactly one rating window ago can still be rated.
type TemporalPolicy struct {
	autoCancelAfter time.Duration
	ratingWindow    time.Duration
}

// NewTemporalPolicy builds a policy with custom windows; both must be positive.
func NewTemporalPolicy(autoCancelAfter, ratingWindow time.Duration) (TemporalPolicy, error) {
	var errList []error
	if autoCancelAfter <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("auto cancel window",
			fmt.Errorf("%s is not greater than 0", autoCancelAfter)))
	}
	if ratingWindow <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("rating window",
			fmt.Errorf("%s is not greater than 0", ratingWindow)))
	}
	if err := errors.Join(errList...); err != nil {
		return TemporalPolicy{}, err
	}

	return TemporalPolicy{autoCancelAfter: autoCancelAfter, ratingWindow: ratingWindow}, nil
}

// DefaultTemporalPolicy uses the 48 hour and 30 day windows.
func DefaultTemporalPolicy() TemporalPolicy {
	return TemporalPolicy{autoCancelAfter: DefaultAutoCancelAfter, ratingWindow: DefaultRatingWindow}
}

func (p TemporalPolicy) AutoCancelAfter() time.Duration { return p.autoCancelAfter }
func (p TemporalPolicy) RatingWindow() time.Duration    { return p.ratingWindow }

// IsPendingExpired reports whether item has been Pending for at least the
// auto-cancel window. Items in any other status are never expired.
func (p TemporalPolicy) IsPendingExpired(item PendingItem, now time.Time) bool {
	if item.Status() != workitem.Pending {
		return false
	}
	return elapsedMillis(item.CreatedAt(), now) >= p.autoCancelAfter.Milliseconds()
}

// CanRate reports whether now is within the rating window after completedAt.
func (p TemporalPolicy) CanRate(completedAt, now time.Time) bool {
	return elapsedMillis(completedAt, now) <= p.ratingWindow.Milliseconds()
}

// AutoCancel cancels item if it is pending and expired. It goes through the
// regular transition so the lifecycle table still applies.
func (p TemporalPolicy) AutoCancel(item CancellableItem, now time.Time) (bool, error) {
	if !p.IsPendingExpired(item, now) {
		return false, nil
	}
	if err := item.Transition(workitem.Cancelled, now); err != nil {
		return false, err
	}
	return true, nil
}

// PendingCutoff is the latest creation time an item may have and still be
// expired at now. Storage queries use it to preselect candidates with
// created_at <= cutoff.
//
// Expiry compares whole milliseconds, so the cutoff is the last instant of
// the cutoff millisecond: an item created at 08:30:00.0007 is expired from
// 08:30:00.000 two days later and must be selected at that time.
func (p TemporalPolicy) PendingCutoff(now time.Time) time.Time {
	lastExpiredMilli := now.UnixMilli() - p.autoCancelAfter.Milliseconds()
	return time.UnixMilli(lastExpiredMilli + 1).Add(-time.Nanosecond).In(now.Location())
}

func elapsedMillis(from, to time.Time) int64 {
	return to.UnixMilli() - from.UnixMilli()
}
