package cmd

import (
	"log/slog"

	httpadapter "triage/internal/adapters/in/http"
	"triage/internal/adapters/in/kafka"
	"triage/internal/adapters/out/postgres"
	"triage/internal/core/application/usecases/commands"
	"triage/internal/core/application/usecases/queries"
	"triage/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	snapshot   *queries.RankedOrdersSnapshot
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		snapshot:   queries.NewRankedOrdersSnapshot(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRankedOrdersQueryHandler() queries.GetRankedOrdersQueryHandler {
	return queries.NewGetRankedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) RankedOrdersSnapshot() *queries.RankedOrdersSnapshot {
	return c.snapshot
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetRankedOrdersQueryHandler(),
		c.snapshot,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetRankedOrdersQueryHandler(),
		c.snapshot,
		c.configs.DashboardRefreshSchedule,
		logger,
	)
}

func (c *CompositionRoot) CreateOrderPlacedConsumer(logger *slog.Logger) (*kafka.OrderPlacedConsumer, error) {
	return kafka.NewOrderPlacedConsumer(
		kafka.ConsumerConfig{
			Brokers: []string{c.configs.KafkaHost},
			Topic:   c.configs.KafkaOrderPlacedTopic,
			GroupID: c.configs.KafkaConsumerGroup,
		},
		c.CreateCreateOrderCommandHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
