// Package commands contains the operations that change marketplace state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load what it needs, apply domain rules, persist, commit.
package commands

import (
	"context"

	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/ports"
)

type (
	// TxManager controls the transaction of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OfferingRepoFactory interface {
		OfferingRepository() ports.OfferingRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// WorkItemRepoFactory exposes the repository of one work item kind.
	WorkItemRepoFactory[K workitem.Kind] interface {
		WorkItemRepository() ports.WorkItemRepository[K]
	}

	// WorkItemUoW covers creating and transitioning work items of kind K.
	WorkItemUoW[K workitem.Kind] interface {
		TxManager
		WorkItemRepoFactory[K]
		OfferingRepoFactory
	}

	WorkItemUoWFactory[K workitem.Kind] interface {
		Create() WorkItemUoW[K]
	}

	// RatingUoW covers rating operations, which read the rated order.
	RatingUoW interface {
		TxManager
		OrderRepoFactory
		RatingRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}

	OfferingUoW interface {
		TxManager
		OfferingRepoFactory
	}

	OfferingUoWFactory interface {
		Create() OfferingUoW
	}
)
