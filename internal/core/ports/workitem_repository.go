// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories, the unit of work and the clock.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
)

// WorkItemRepository persists work items of kind K. Missing items are reported
// as errs.ErrObjectNotFound.
type WorkItemRepository[K workitem.Kind] interface {
	// Add stores a new work item.
	Add(ctx context.Context, item *workitem.WorkItem[K]) error

	// Update stores the current state of an existing work item.
	Update(ctx context.Context, item *workitem.WorkItem[K]) error

	// Get loads a work item without locking it.
	Get(ctx context.Context, id kernel.UUID) (*workitem.WorkItem[K], error)

	// GetForUpdate loads a work item and locks its row until the surrounding
	// transaction ends, so that no other transition on the same id can
	// interleave between validation and write. Must be called inside a
	// transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*workitem.WorkItem[K], error)

	// GetPendingIDsCreatedBefore lists the ids of up to limit Pending items
	// created at or before cutoff, oldest first. Rows are not decoded, so one
	// unreadable row cannot hide the others.
	GetPendingIDsCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]kernel.UUID, error)
}

type (
	OrderRepository          = WorkItemRepository[workitem.OrderKind]
	ServiceRequestRepository = WorkItemRepository[workitem.ServiceRequestKind]
)
