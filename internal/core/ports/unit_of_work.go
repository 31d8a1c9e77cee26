package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Calling it after Commit is a no-op
	// that returns an error the caller may ignore.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ServiceRequestRepository() ServiceRequestRepository
	RatingRepository() RatingRepository
	OfferingRepository() OfferingRepository
}
