package cmd

import (
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/amountcodec"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.TemporalPolicy
	clock      ports.Clock
	logger     zerolog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger zerolog.Logger) (*CompositionRoot, error) {
	policy, err := services.NewTemporalPolicy(cfg.AutoCancelAfter, cfg.RatingWindow)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, amountcodec.NewDecoder(logger, cfg.StrictMoney)),
		policy:     policy,
		clock:      SystemClock{},
		logger:     logger,
	}, nil
}

// WithClock replaces the wall clock, for tests that need fixed time.
func (c *CompositionRoot) WithClock(clock ports.Clock) *CompositionRoot {
	c.clock = clock
	return c
}

func (c *CompositionRoot) ratingUoWFactory() commands.RatingUoWFactory {
	return FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) offeringUoWFactory() commands.OfferingUoWFactory {
	return FuncOfferingUoWFactory(func() commands.OfferingUoW {
		return c.uowFactory.Create()
	})
}

func workItemUoWFactory[K workitem.Kind](c *CompositionRoot) commands.WorkItemUoWFactory[K] {
	return FuncWorkItemUoWFactory[K](func() commands.WorkItemUoW[K] {
		return postgres.NewWorkItemUnitOfWork[K](c.uowFactory)
	})
}

func (c *CompositionRoot) CreateCreateOfferingCommandHandler() commands.CreateOfferingCommandHandler {
	return commands.NewCreateOfferingCommandHandler(c.offeringUoWFactory())
}

func (c *CompositionRoot) CreateChangeOfferingStatusCommandHandler() commands.ChangeOfferingStatusCommandHandler {
	return commands.NewChangeOfferingStatusCommandHandler(c.offeringUoWFactory())
}

func CreateCreateWorkItemCommandHandler[K workitem.Kind](c *CompositionRoot) commands.CreateWorkItemCommandHandler[K] {
	return commands.NewCreateWorkItemCommandHandler[K](workItemUoWFactory[K](c), c.clock)
}

func CreateUpdateWorkItemStatusCommandHandler[K workitem.Kind](
	c *CompositionRoot,
) commands.UpdateWorkItemStatusCommandHandler[K] {
	return commands.NewUpdateWorkItemStatusCommandHandler[K](workItemUoWFactory[K](c), c.clock)
}

func CreateAutoCancelExpiredCommandHandler[K workitem.Kind](
	c *CompositionRoot,
) commands.AutoCancelExpiredCommandHandler[K] {
	return commands.NewAutoCancelExpiredCommandHandler[K](workItemUoWFactory[K](c), c.policy, c.clock)
}

func (c *CompositionRoot) CreateCreateRatingCommandHandler() commands.CreateRatingCommandHandler {
	return commands.NewCreateRatingCommandHandler(
		c.ratingUoWFactory(),
		services.NewRatingEligibilityGuard(c.policy),
		c.clock,
	)
}

func (c *CompositionRoot) CreateUpdateRatingCommandHandler() commands.UpdateRatingCommandHandler {
	return commands.NewUpdateRatingCommandHandler(c.ratingUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteRatingCommandHandler() commands.DeleteRatingCommandHandler {
	return commands.NewDeleteRatingCommandHandler(c.ratingUoWFactory())
}

func (c *CompositionRoot) CreateGetProviderRatingSummaryQueryHandler() queries.GetProviderRatingSummaryQueryHandler {
	return queries.NewGetProviderRatingSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProviderRatingsQueryHandler() queries.GetProviderRatingsQueryHandler {
	return queries.NewGetProviderRatingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientRatingsQueryHandler() queries.GetClientRatingsQueryHandler {
	return queries.NewGetClientRatingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRatingByOrderQueryHandler() queries.GetRatingByOrderQueryHandler {
	return queries.NewGetRatingByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOffering:       c.CreateCreateOfferingCommandHandler(),
		ChangeOfferingStatus: c.CreateChangeOfferingStatusCommandHandler(),

		CreateOrder:          CreateCreateWorkItemCommandHandler[workitem.OrderKind](c),
		CreateServiceRequest: CreateCreateWorkItemCommandHandler[workitem.ServiceRequestKind](c),

		UpdateOrderStatus:          CreateUpdateWorkItemStatusCommandHandler[workitem.OrderKind](c),
		UpdateServiceRequestStatus: CreateUpdateWorkItemStatusCommandHandler[workitem.ServiceRequestKind](c),

		CreateRating: c.CreateCreateRatingCommandHandler(),
		UpdateRating: c.CreateUpdateRatingCommandHandler(),
		DeleteRating: c.CreateDeleteRatingCommandHandler(),

		GetOrder:          queries.NewGetWorkItemQueryHandler[workitem.OrderKind](c.gormDB),
		GetServiceRequest: queries.NewGetWorkItemQueryHandler[workitem.ServiceRequestKind](c.gormDB),

		GetOpenOrders:          queries.NewGetOpenWorkItemsQueryHandler[workitem.OrderKind](c.gormDB),
		GetOpenServiceRequests: queries.NewGetOpenWorkItemsQueryHandler[workitem.ServiceRequestKind](c.gormDB),

		GetProviderRatingSummary: c.CreateGetProviderRatingSummaryQueryHandler(),
		GetProviderRatings:       c.CreateGetProviderRatingsQueryHandler(),
		GetClientRatings:         c.CreateGetClientRatingsQueryHandler(),
		GetOrderRating:           c.CreateGetRatingByOrderQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		CreateAutoCancelExpiredCommandHandler[workitem.OrderKind](c),
		CreateAutoCancelExpiredCommandHandler[workitem.ServiceRequestKind](c),
		c.cfg.SweepSchedule,
		c.cfg.SweepBatchSize,
		c.logger,
	)
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncOfferingUoWFactory func() commands.OfferingUoW

func (f FuncOfferingUoWFactory) Create() commands.OfferingUoW {
	return f()
}

type FuncWorkItemUoWFactory[K workitem.Kind] func() commands.WorkItemUoW[K]

func (f FuncWorkItemUoWFactory[K]) Create() commands.WorkItemUoW[K] {
	return f()
}
