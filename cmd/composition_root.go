package cmd

import (
	"log/slog"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/in/seed"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      func() time.Time
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      time.Now,
		logger:     logger,
	}
}

func (c *CompositionRoot) boardUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSeedOrdersCommandHandler() commands.SeedOrdersCommandHandler {
	return commands.NewSeedOrdersCommandHandler(c.boardUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateHandlerCommandHandler() commands.CreateHandlerCommandHandler {
	var f commands.HandlerUoWFactory = FuncHandlerUoWFactory(func() commands.HandlerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateHandlerCommandHandler(f)
}

func (c *CompositionRoot) CreateRecomputePrioritiesCommandHandler() commands.RecomputePrioritiesCommandHandler {
	return commands.NewRecomputePrioritiesCommandHandler(c.boardUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.boardUoWFactory())
}

func (c *CompositionRoot) CreateReorderOrderCommandHandler() commands.ReorderOrderCommandHandler {
	return commands.NewReorderOrderCommandHandler(c.boardUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.boardUoWFactory())
}

func (c *CompositionRoot) CreateAssignNextOrderCommandHandler() commands.AssignNextOrderCommandHandler {
	return commands.NewAssignNextOrderCommandHandler(c.boardUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetPackingListQueryHandler() queries.GetPackingListQueryHandler {
	return queries.NewGetPackingListQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetHandlersQueryHandler() queries.GetHandlersQueryHandler {
	return queries.NewGetHandlersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFulfillmentMetricsQueryHandler() queries.GetFulfillmentMetricsQueryHandler {
	return queries.NewGetFulfillmentMetricsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			SeedOrders:          c.CreateSeedOrdersCommandHandler(),
			CreateHandler:       c.CreateCreateHandlerCommandHandler(),
			RecomputePriorities: c.CreateRecomputePrioritiesCommandHandler(),
			UpdateOrderStatus:   c.CreateUpdateOrderStatusCommandHandler(),
			ReorderOrder:        c.CreateReorderOrderCommandHandler(),
			AssignOrder:         c.CreateAssignOrderCommandHandler(),
		},
		httpin.Queries{
			ListOrders:     c.CreateListOrdersQueryHandler(),
			GetOrder:       c.CreateGetOrderQueryHandler(),
			GetPackingList: c.CreateGetPackingListQueryHandler(),
			GetHandlers:    c.CreateGetHandlersQueryHandler(),
			GetMetrics:     c.CreateGetFulfillmentMetricsQueryHandler(),
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(
		seed.Config{
			File:       c.configs.SeedFile,
			Sample:     c.configs.SampleEnabled(),
			SampleSize: c.configs.SampleSize(),
		},
		c.CreateCreateHandlerCommandHandler(),
		c.CreateGetHandlersQueryHandler(),
		c.CreateGetFulfillmentMetricsQueryHandler(),
		c.CreateSeedOrdersCommandHandler(),
		c.clock,
		nil,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRecomputePrioritiesCommandHandler(),
		c.CreateAssignNextOrderCommandHandler(),
		jobs.Schedules{
			PriorityRefresh: c.configs.PriorityRefreshSchedule,
			AutoAssignment:  c.configs.AutoAssignSchedule,
		},
		c.logger,
	)
}

type FuncHandlerUoWFactory func() commands.HandlerUoW

func (f FuncHandlerUoWFactory) Create() commands.HandlerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
