// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern and the schema of the marketplace.
//
// A unit of work owns at most one transaction. Repositories obtained from it
// after Begin run inside that transaction; before Begin they use the plain
// connection and every statement commits on its own.
//
// Key Features:
//   - Transaction management across the order, service request, rating and
//     offering repositories
//   - Aggregate tracking of every aggregate a repository writes
//   - Row locks through GetForUpdate, held until Commit or Rollback
//   - One money loading policy (lenient or strict) shared by all repositories
//
// Usage Patterns:
//
// Single Work Item Transition:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	order, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = order.Transition(workitem.InProgress, clock.Now()); err != nil {
//	    return err
//	}
//	if err = uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Multi-Repository Transactions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// The order row stays locked until Commit, so no transition can slip
//	// between the eligibility checks and the insert.
//	order, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	r, err := guard.CreateRating(order, nil, req, ratingID, clock.Now())
//	if err != nil {
//	    return err
//	}
//	if err = uow.RatingRepository().Add(ctx, r); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Error Handling:
//   - Begin errors are returned before any repository is touched
//   - A deferred Rollback after a successful Commit returns
//     gorm.ErrInvalidTransaction, which callers ignore
//   - A duplicate rating surfaces from RatingRepository().Add as an
//     OrderAlreadyRated rejection, not as a driver error
//
// Concurrency Considerations:
//   - Each UnitOfWork instance holds its own transaction and must not be
//     shared between goroutines
//   - Concurrent operations on one work item serialize on its row lock
package postgres

import (
	"context"

	"marketplace/internal/adapters/out/postgres/amountcodec"
	"marketplace/internal/adapters/out/postgres/offeringrepo"
	"marketplace/internal/adapters/out/postgres/ratingrepo"
	"marketplace/internal/adapters/out/postgres/workitemrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one money loading policy. Each business operation gets a fresh
// unit of work, isolated from other concurrent operations.
//
// Example:
//
//	amounts := amountcodec.NewDecoder(logger, cfg.StrictMoney)
//	factory := NewGormUnitOfWorkFactory(db, amounts)
//	uow := factory.Create()
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	amounts amountcodec.Decoder
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based units of work.
// The connection and the amount decoder are used by every unit of work it
// creates.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, amountcodec.NewDecoder(logger, false))
func NewGormUnitOfWorkFactory(db *gorm.DB, amounts amountcodec.Decoder) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, amounts: amounts}
}

// Create produces a new UnitOfWork with no open transaction and no tracked
// aggregates.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OfferingRepository().Add(ctx, offering); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		amounts:           f.amounts,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written through its repositories.
//
// Repository accessors are cheap and may be called repeatedly; every call
// returns a repository bound to the current connection, so a repository
// obtained before Begin does not join the transaction.
//
// Example usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("begin: %w", err)
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	request, err := uow.ServiceRequestRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = request.Cancel(); err != nil {
//	    return err
//	}
//	if err = uow.ServiceRequestRepository().Update(ctx, request); err != nil {
//	    return err
//	}
//	if err = uow.Commit(ctx); err != nil {
//	    return fmt.Errorf("commit: %w", err)
//	}
//
//	written := uow.(*GormUnitOfWork).TrackedAggregateIDs()
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	amounts           amountcodec.Decoder
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again while one is open is a no-op,
// there are no nested transactions.
//
// Example:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("begin: %w", err)
//	}
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit makes every write of the transaction permanent and releases its row
// locks. The transaction is closed afterwards and cannot be reused.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open.
//
// Example:
//
//	if err := uow.RatingRepository().Update(ctx, r); err != nil {
//	    return err
//	}
//	if err := uow.Commit(ctx); err != nil {
//	    return fmt.Errorf("commit rating: %w", err)
//	}
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards every write of the transaction and releases its row
// locks. The transaction is closed afterwards.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open, which is the
// case after Commit. That makes a deferred Rollback safe on every path:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides order persistence within the unit of work.
// Statements run in the open transaction, or autocommit when there is none.
// Every order the repository adds or updates is tracked.
//
// Example:
//
//	order, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	if err != nil {
//	    return err
//	}
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return workitemrepo.NewGormWorkItemRepository[workitem.OrderKind](uow.conn(), uow, uow.amounts)
}

// ServiceRequestRepository provides service request persistence within the
// unit of work. It reads and writes the service_requests table only.
//
// Example:
//
//	err := uow.ServiceRequestRepository().Add(ctx, request)
func (uow *GormUnitOfWork) ServiceRequestRepository() ports.ServiceRequestRepository {
	return workitemrepo.NewGormWorkItemRepository[workitem.ServiceRequestKind](uow.conn(), uow, uow.amounts)
}

// RatingRepository provides rating persistence within the unit of work.
//
// Example:
//
//	existing, err := uow.RatingRepository().GetByOrderID(ctx, orderID)
//	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
//	    return err
//	}
func (uow *GormUnitOfWork) RatingRepository() ports.RatingRepository {
	return ratingrepo.NewGormRatingRepository(uow.conn(), uow)
}

// OfferingRepository provides catalog offering persistence within the unit of
// work. Prices are decoded with the factory's amount policy.
//
// Example:
//
//	offering, err := uow.OfferingRepository().Get(ctx, serviceID)
//	if err != nil {
//	    return err
//	}
//	if err = offering.EnsureContractable(); err != nil {
//	    return err
//	}
func (uow *GormUnitOfWork) OfferingRepository() ports.OfferingRepository {
	return offeringrepo.NewGormOfferingRepository(uow.conn(), uow, uow.amounts)
}

// TrackAggregate is called by repositories for every aggregate they write.
// Aggregates are kept in write order, duplicates included.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregateIDs lists the ids written so far, in write order.
//
// Example:
//
//	for _, id := range uow.TrackedAggregateIDs() {
//	    logger.Debug().Str("id", id.String()).Msg("written")
//	}
func (uow *GormUnitOfWork) TrackedAggregateIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

// WorkItemUnitOfWork narrows a unit of work to one work item kind, so generic
// handlers can reach the repository of K without knowing the table.
//
// Example:
//
//	uow := NewWorkItemUnitOfWork[workitem.ServiceRequestKind](factory)
//	ids, err := uow.WorkItemRepository().GetPendingIDsCreatedBefore(ctx, cutoff, 100)
type WorkItemUnitOfWork[K workitem.Kind] struct {
	*GormUnitOfWork
}

// NewWorkItemUnitOfWork creates a fresh unit of work for kind K from factory.
func NewWorkItemUnitOfWork[K workitem.Kind](f *GormUnitOfWorkFactory) *WorkItemUnitOfWork[K] {
	return &WorkItemUnitOfWork[K]{GormUnitOfWork: f.create()}
}

// WorkItemRepository provides the repository of kind K within the unit of work.
func (uow *WorkItemUnitOfWork[K]) WorkItemRepository() ports.WorkItemRepository[K] {
	return workitemrepo.NewGormWorkItemRepository[K](uow.conn(), uow.GormUnitOfWork, uow.amounts)
}
