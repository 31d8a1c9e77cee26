package workitem

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrWorkItemIsNotConstructed is returned by Validate for a zero WorkItem.
var ErrWorkItemIsNotConstructed = errors.New("work item must be created via New or Restore")

// WorkItem is the aggregate root for orders and service requests. The kind
// parameter K only selects the entity name and the storage table; both kinds
// share one lifecycle.
//
// Invariants:
//   - client and provider are different users
//   - status is always one of the enum values
//   - completedAt is set if and only if status is Completed
//   - status only changes through Transition
//
// Example usage:
//
//	order, err := workitem.New[workitem.OrderKind](
//	    kernel.NewUUID(), clientID, providerID, offering.ID(), offering.Price(), clock.Now())
//	if err != nil {
//	    return err
//	}
//	if err = order.Start(); err != nil {
//	    return err
//	}
//	if err = order.Complete(clock.Now()); err != nil {
//	    return err
//	}
//	fmt.Println(order.Status(), *order.CompletedAt())
type WorkItem[K Kind] struct {
	id            kernel.UUID
	clientID      kernel.UUID
	providerID    kernel.UUID
	serviceID     kernel.UUID
	chargedAmount kernel.Money
	status        Status
	createdAt     time.Time
	completedAt   *time.Time
	isConstructed bool
}

// New creates a Pending work item.
//
// Every argument is validated and all failures are reported together, so a
// caller sees a missing id and a client acting as its own provider in one
// error. The charged amount must be greater than zero.
//
// Parameters:
//   - id: identifier of the new item
//   - clientID: user commissioning the work
//   - providerID: user doing the work, must differ from clientID
//   - serviceID: offering the work was contracted from
//   - chargedAmount: price snapshot taken from the offering
//   - createdAt: creation time, start of the auto-cancel window
//
// Returns:
//   - *WorkItem[K]: the Pending item
//   - error: ErrSameClientAndProvider, kernel.ErrInvalidAmount or a
//     value-is-invalid error, joined
//
// Example:
//
//	order, err := workitem.New[workitem.OrderKind](
//	    kernel.NewUUID(), clientID, providerID, offeringID, price, clock.Now())
//	if err != nil {
//	    return err
//	}
func New[K Kind](
	id, clientID, providerID, serviceID kernel.UUID,
	chargedAmount kernel.Money,
	createdAt time.Time,
) (*WorkItem[K], error) {
	w := &WorkItem[K]{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setParties(clientID, providerID),
		w.setServiceID(serviceID),
		w.setChargedAmount(chargedAmount),
		requirePositive(chargedAmount),
		w.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Restore rebuilds a work item loaded from storage. It re-checks every
// invariant, including the status/completedAt pairing, so corrupted rows are
// refused instead of silently accepted. Unlike New it accepts a zero charged
// amount, which is what a lenient load produces for an unreadable price.
//
// Example:
//
//	item, err := workitem.Restore[workitem.ServiceRequestKind](
//	    id, clientID, providerID, serviceID, amount,
//	    workitem.Completed, createdAt, &completedAt)
//	if err != nil {
//	    return nil, fmt.Errorf("service request %s: %w", id, err)
//	}
func Restore[K Kind](
	id, clientID, providerID, serviceID kernel.UUID,
	chargedAmount kernel.Money,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
) (*WorkItem[K], error) {
	w := &WorkItem[K]{isConstructed: true}

	if err := errors.Join(
		w.setID(id),
		w.setParties(clientID, providerID),
		w.setServiceID(serviceID),
		w.setChargedAmount(chargedAmount),
		w.setCreatedAt(createdAt),
		w.setStatus(status, completedAt),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate reports ErrWorkItemIsNotConstructed for a nil item or one that
// did not come from New or Restore.
//
// Example:
//
//	var zero workitem.Order
//	err := zero.Validate() // ErrWorkItemIsNotConstructed
func (w *WorkItem[K]) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkItemIsNotConstructed
	}
	return nil
}

// IsEqual compares identity only; two loads of the same row are equal even
// if one of them has since been transitioned.
func (w *WorkItem[K]) IsEqual(other *WorkItem[K]) bool {
	return other != nil && w.id.IsEqual(other.id)
}

func (w *WorkItem[K]) ID() kernel.UUID             { return w.id }
func (w *WorkItem[K]) ClientID() kernel.UUID       { return w.clientID }
func (w *WorkItem[K]) ProviderID() kernel.UUID     { return w.providerID }
func (w *WorkItem[K]) ServiceID() kernel.UUID      { return w.serviceID }
func (w *WorkItem[K]) ChargedAmount() kernel.Money { return w.chargedAmount }
func (w *WorkItem[K]) Status() Status              { return w.status }
func (w *WorkItem[K]) CreatedAt() time.Time        { return w.createdAt }

// CompletedAt returns a copy of the completion time, nil unless Completed.
// Changing the returned value does not change the item.
//
// Example:
//
//	if at := order.CompletedAt(); at != nil {
//	    canRate := policy.CanRate(*at, clock.Now())
//	}
func (w *WorkItem[K]) CompletedAt() *time.Time {
	if w.completedAt == nil {
		return nil
	}
	t := *w.completedAt
	return &t
}

// Kind returns the entity name, e.g. "order".
func (w *WorkItem[K]) Kind() string {
	return KindName[K]()
}

// Transition moves the item to status to.
//
// The table is consulted before any field is written: on failure the
// returned *InvalidTransitionError wraps ErrInvalidTransition and the item is
// unchanged. Entering Completed stamps completedAt with now; no other target
// touches it.
//
// Parameters:
//   - to: target status
//   - now: completion time, used only when to is Completed
//
// Returns:
//   - error: *InvalidTransitionError when the lifecycle does not allow the
//     move, e.g. Completed to Cancelled or Pending to Completed
//
// Example:
//
//	err := item.Transition(workitem.Cancelled, clock.Now())
//	var invalid *workitem.InvalidTransitionError
//	if errors.As(err, &invalid) {
//	    log.Printf("%s stays %s", invalid.ID, invalid.From)
//	}
func (w *WorkItem[K]) Transition(to Status, now time.Time) error {
	next, err := w.status.TransitionTo(to)
	if err != nil {
		return &InvalidTransitionError{
			Entity: w.Kind(),
			ID:     w.id.String(),
			From:   w.status,
			To:     to,
		}
	}

	w.status = next
	if next == Completed {
		completedAt := now
		w.completedAt = &completedAt
	}
	return nil
}

// Start moves a Pending item to InProgress. An item that is already
// InProgress cannot be started again.
//
// Example:
//
//	if err := order.Start(); err != nil {
//	    return err // ErrInvalidTransition
//	}
func (w *WorkItem[K]) Start() error {
	return w.Transition(InProgress, time.Time{})
}

// Complete moves an InProgress item to Completed at now. The rating window
// of an order starts at now.
//
// Example:
//
//	if err := order.Complete(clock.Now()); err != nil {
//	    return err
//	}
func (w *WorkItem[K]) Complete(now time.Time) error {
	return w.Transition(Completed, now)
}

// Cancel moves a Pending item to Cancelled. Work that has started cannot be
// cancelled.
func (w *WorkItem[K]) Cancel() error {
	return w.Transition(Cancelled, time.Time{})
}

func (w *WorkItem[K]) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	w.id = id
	return nil
}

func (w *WorkItem[K]) setParties(clientID, providerID kernel.UUID) error {
	if err := errors.Join(clientID.Validate(), providerID.Validate()); err != nil {
		return fmt.Errorf("parties: %w", err)
	}
	if clientID.IsEqual(providerID) {
		return fmt.Errorf("%w: %w", ErrSameClientAndProvider,
			errs.NewValueIsInvalidErrorWithCause("provider", fmt.Errorf("%s is also the client", providerID)))
	}
	w.clientID = clientID
	w.providerID = providerID
	return nil
}

func (w *WorkItem[K]) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return fmt.Errorf("service id: %w", err)
	}
	w.serviceID = serviceID
	return nil
}

func (w *WorkItem[K]) setChargedAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return fmt.Errorf("charged amount: %w", err)
	}
	w.chargedAmount = amount
	return nil
}

// requirePositive applies to new items only; stored amounts may have been
// coerced to zero on load.
func requirePositive(amount kernel.Money) error {
	if amount.Validate() != nil || amount.Decimal().IsPositive() {
		return nil
	}
	return fmt.Errorf("%w: %w", kernel.ErrInvalidAmount,
		errs.NewValueIsInvalidErrorWithCause("charged amount", fmt.Errorf("%s is not greater than 0", amount)))
}

func (w *WorkItem[K]) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	w.createdAt = createdAt
	return nil
}

func (w *WorkItem[K]) setStatus(status Status, completedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if (status == Completed) != (completedAt != nil) {
		return fmt.Errorf("%w: %w", ErrCompletionDateMismatch,
			errs.NewValueIsInvalidErrorWithCause("completed at",
				fmt.Errorf("status %s with completed at present=%t", status, completedAt != nil)))
	}
	w.status = status
	if completedAt != nil {
		t := *completedAt
		w.completedAt = &t
	}
	return nil
}
