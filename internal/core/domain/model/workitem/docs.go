// Package workitem implements the lifecycle of the two kinds of work a client
// commissions from a provider: an Order and a ServiceRequest.
//
// Both share one generic aggregate, WorkItem[K], parameterised by a Kind marker
// type. The lifecycle is a fixed state machine:
//
//	Pending ──┬──> InProgress ──> Completed
//	          │
//	          └──> Cancelled
//
// Completed and Cancelled are terminal. Every status change goes through
// WorkItem.Transition, which checks the table before writing anything, so a
// rejected transition leaves the aggregate untouched. completedAt is stamped
// only when the item enters Completed.
//
// Time is always supplied by the caller; the package never reads the clock.
package workitem
