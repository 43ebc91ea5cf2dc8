package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// DefaultRoster is created when the roster is empty.
var DefaultRoster = []struct {
	Name          string
	Role          string
	Capacity      int
	AssignedCount int
}{
	{Name: "German Gomez", Role: "Direction", Capacity: 15, AssignedCount: 6},
	{Name: "Valeria Elizondo", Role: "Operations", Capacity: 10, AssignedCount: 8},
}

type (
	handlerCreator interface {
		Handle(ctx context.Context, cmd commands.CreateHandlerCommand) error
	}

	rosterReader interface {
		Handle(ctx context.Context, query queries.GetHandlersQuery) ([]queries.HandlerView, error)
	}

	metricsReader interface {
		Handle(ctx context.Context, query queries.GetFulfillmentMetricsQuery) (queries.FulfillmentMetrics, error)
	}

	boardSeeder interface {
		Handle(ctx context.Context, cmd commands.SeedOrdersCommand) error
	}
)

// Config selects the seed source. File wins over Sample.
type Config struct {
	File       string
	Sample     bool
	SampleSize int
}

// Seeder prepares the roster and the board on startup.
type Seeder struct {
	cfg           Config
	createHandler handlerCreator
	getHandlers   rosterReader
	getMetrics    metricsReader
	seedOrders    boardSeeder
	clock         func() time.Time
	rng           *rand.Rand
	logger        *slog.Logger
}

func NewSeeder(
	cfg Config,
	createHandler handlerCreator,
	getHandlers rosterReader,
	getMetrics metricsReader,
	seedOrders boardSeeder,
	clock func() time.Time,
	rng *rand.Rand,
	logger *slog.Logger,
) *Seeder {
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultSampleSize
	}
	if clock == nil {
		clock = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Seeder{
		cfg:           cfg,
		createHandler: createHandler,
		getHandlers:   getHandlers,
		getMetrics:    getMetrics,
		seedOrders:    seedOrders,
		clock:         clock,
		rng:           rng,
		logger:        logger.With("component", "seeder"),
	}
}

// Run creates the default roster when it is empty, then seeds the board when
// it has no orders. A populated board is never touched.
func (s *Seeder) Run(ctx context.Context) error {
	roster, err := s.ensureRoster(ctx)
	if err != nil {
		return err
	}

	metrics, err := s.getMetrics.Handle(ctx, queries.NewGetFulfillmentMetricsQuery())
	if err != nil {
		return err
	}

	if metrics.Total > 0 {
		s.logger.InfoContext(ctx, "board already populated", "orders", metrics.Total)
		return nil
	}

	seeds, source, err := s.load(roster)
	if err != nil {
		return err
	}

	if seeds == nil {
		s.logger.InfoContext(ctx, "no seed source configured")
		return nil
	}

	cmd, err := commands.NewSeedOrdersCommand(seeds)
	if err != nil {
		return err
	}

	if err = s.seedOrders.Handle(ctx, cmd); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "board seeded", "orders", len(seeds), "source", source)
	return nil
}

func (s *Seeder) ensureRoster(ctx context.Context) ([]kernel.UUID, error) {
	views, err := s.getHandlers.Handle(ctx, queries.NewGetHandlersQuery())
	if err != nil {
		return nil, err
	}

	if len(views) > 0 {
		ids := make([]kernel.UUID, len(views))
		for i, v := range views {
			ids[i] = v.ID
		}
		return ids, nil
	}

	ids := make([]kernel.UUID, 0, len(DefaultRoster))
	for _, h := range DefaultRoster {
		cmd, cmdErr := commands.NewCreateHandlerCommand(kernel.NewUUID(), h.Name, h.Role, h.Capacity, h.AssignedCount)
		if cmdErr != nil {
			return nil, cmdErr
		}

		if err = s.createHandler.Handle(ctx, cmd); err != nil {
			return nil, fmt.Errorf("create handler %s: %w", h.Name, err)
		}

		ids = append(ids, cmd.HandlerID())
	}

	s.logger.InfoContext(ctx, "default roster created", "handlers", len(ids))
	return ids, nil
}

func (s *Seeder) load(roster []kernel.UUID) ([]commands.SeedOrder, string, error) {
	switch {
	case s.cfg.File != "":
		f, err := os.Open(s.cfg.File)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()

		seeds, err := ReadOrdersCSV(f)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", s.cfg.File, err)
		}
		return seeds, s.cfg.File, nil

	case s.cfg.Sample:
		seeds, err := SampleOrders(s.cfg.SampleSize, roster, s.clock(), s.rng)
		if err != nil {
			return nil, "", err
		}
		return seeds, "sample", nil

	default:
		return nil, "", nil
	}
}
