package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/amountcodec"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var base = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type ratingUoWFactory func() commands.RatingUoW

func (f ratingUoWFactory) Create() commands.RatingUoW { return f() }

type orderUoWFactory func() commands.WorkItemUoW[workitem.OrderKind]

func (f orderUoWFactory) Create() commands.WorkItemUoW[workitem.OrderKind] { return f() }

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	gorm      *postgres_adapter.GormUnitOfWorkFactory
	factory   ports.UnitOfWorkFactory
	offering  *catalog.Offering
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.gorm = postgres_adapter.NewGormUnitOfWorkFactory(db, pgtest.Amounts())
	suite.factory = suite.gorm
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	var err error
	suite.offering, err = pgtest.SeedOffering(context.Background(), suite.db, kernel.NewUUID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *workitem.Order {
	o, err := workitem.New[workitem.OrderKind](
		kernel.NewUUID(), kernel.NewUUID(), suite.offering.ProviderID(), suite.offering.ID(),
		suite.offering.Price(), base)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Commit(ctx), "commit without a transaction")
	suite.Require().Error(uow.Rollback(ctx), "rollback after commit")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	// Given
	ctx := context.Background()
	uow := suite.factory.Create()
	order := suite.newOrder()
	request, err := workitem.New[workitem.ServiceRequestKind](
		kernel.NewUUID(), kernel.NewUUID(), suite.offering.ProviderID(), suite.offering.ID(),
		suite.offering.Price(), base)
	suite.Require().NoError(err)

	// When
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.ServiceRequestRepository().Add(ctx, request))
	suite.Require().NoError(uow.Commit(ctx))

	// Then
	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	_, err = fresh.ServiceRequestRepository().Get(ctx, request.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	// Given
	ctx := context.Background()
	uow := suite.factory.Create()
	order := suite.newOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, order))

	// When
	suite.Require().NoError(uow.Rollback(ctx))

	// Then
	_, err := suite.factory.Create().OrderRepository().Get(ctx, order.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTrackedAggregateIDs() {
	// Given
	ctx := context.Background()
	uow := postgres_adapter.NewWorkItemUnitOfWork[workitem.OrderKind](suite.gorm)
	first, second := suite.newOrder(), suite.newOrder()

	// When
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.WorkItemRepository().Add(ctx, first))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	// Then
	suite.Equal([]kernel.UUID{first.ID(), second.ID()}, uow.TrackedAggregateIDs())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentRatingsOfOneOrder_OnlyOneSucceeds() {
	// Given
	ctx := context.Background()
	order, err := pgtest.SeedWorkItem[workitem.OrderKind](
		ctx, suite.db, suite.offering, kernel.NewUUID(), workitem.Completed, base)
	suite.Require().NoError(err)

	handler := commands.NewCreateRatingCommandHandler(
		ratingUoWFactory(func() commands.RatingUoW { return suite.factory.Create() }),
		services.NewRatingEligibilityGuard(services.DefaultTemporalPolicy()),
		fixedClock(base.Add(2*time.Hour)),
	)

	const attempts = 4
	results := make([]error, attempts)
	var wg sync.WaitGroup

	// When
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewCreateRatingCommand(
				kernel.NewUUID(), order.ID(), order.ClientID(), order.ProviderID(), 5, nil)
			if cmdErr != nil {
				results[i] = cmdErr
				return
			}
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	// Then
	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.Require().ErrorIs(err, rating.ErrOrderAlreadyRated)
	}
	suite.Equal(1, succeeded)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAutoCancelSweep_CancelsOnlyExpiredPending() {
	// Given
	ctx := context.Background()
	policy := services.DefaultTemporalPolicy()
	now := base.Add(policy.AutoCancelAfter())

	expired, err := pgtest.SeedWorkItem[workitem.OrderKind](
		ctx, suite.db, suite.offering, kernel.NewUUID(), workitem.Pending, base)
	suite.Require().NoError(err)
	fresh, err := pgtest.SeedWorkItem[workitem.OrderKind](
		ctx, suite.db, suite.offering, kernel.NewUUID(), workitem.Pending, base.Add(time.Second))
	suite.Require().NoError(err)
	started, err := pgtest.SeedWorkItem[workitem.OrderKind](
		ctx, suite.db, suite.offering, kernel.NewUUID(), workitem.InProgress, base.Add(-time.Hour))
	suite.Require().NoError(err)

	handler := commands.NewAutoCancelExpiredCommandHandler[workitem.OrderKind](
		orderUoWFactory(func() commands.WorkItemUoW[workitem.OrderKind] {
			return postgres_adapter.NewWorkItemUnitOfWork[workitem.OrderKind](suite.gorm)
		}),
		policy,
		fixedClock(now),
	)
	cmd, err := commands.NewAutoCancelExpiredCommand[workitem.OrderKind](100)
	suite.Require().NoError(err)

	// When
	result, err := handler.Handle(ctx, cmd)

	// Then
	suite.Require().NoError(err)
	suite.Equal(1, result.Cancelled)
	suite.Equal(0, result.Skipped)

	repo := suite.factory.Create().OrderRepository()
	for id, want := range map[kernel.UUID]workitem.Status{
		expired.ID(): workitem.Cancelled,
		fresh.ID():   workitem.Pending,
		started.ID(): workitem.InProgress,
	} {
		got, getErr := repo.Get(ctx, id)
		suite.Require().NoError(getErr)
		suite.Equal(want, got.Status(), id.String())
	}

	// A second run finds nothing left to do.
	result, err = handler.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Equal(commands.AutoCancelResult{}, result)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAutoCancelSweep_StrictMoneySkipsUnreadableRow() {
	// Given
	ctx := context.Background()
	policy := services.DefaultTemporalPolicy()
	now := base.Add(policy.AutoCancelAfter())

	unreadable, err := pgtest.SeedWorkItem[workitem.OrderKind](
		ctx, suite.db, suite.offering, kernel.NewUUID(), workitem.Pending, base.Add(-time.Hour))
	suite.Require().NoError(err)
	readable, err := pgtest.SeedWorkItem[workitem.OrderKind](
		ctx, suite.db, suite.offering, kernel.NewUUID(), workitem.Pending, base)
	suite.Require().NoError(err)
	suite.Require().NoError(
		suite.db.Exec("UPDATE orders SET charged_amount = 'NaN' WHERE id = ?", unreadable.ID().Bytes()).Error)

	strict := postgres_adapter.NewGormUnitOfWorkFactory(suite.db, amountcodec.NewDecoder(zerolog.Nop(), true))
	handler := commands.NewAutoCancelExpiredCommandHandler[workitem.OrderKind](
		orderUoWFactory(func() commands.WorkItemUoW[workitem.OrderKind] {
			return postgres_adapter.NewWorkItemUnitOfWork[workitem.OrderKind](strict)
		}),
		policy,
		fixedClock(now),
	)
	cmd, err := commands.NewAutoCancelExpiredCommand[workitem.OrderKind](100)
	suite.Require().NoError(err)

	// When
	result, err := handler.Handle(ctx, cmd)

	// Then
	suite.Require().ErrorIs(err, kernel.ErrAmountCoerced)
	suite.Contains(err.Error(), unreadable.ID().String())
	suite.Equal(commands.AutoCancelResult{Cancelled: 1}, result)

	got, err := suite.factory.Create().OrderRepository().Get(ctx, readable.ID())
	suite.Require().NoError(err)
	suite.Equal(workitem.Cancelled, got.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
