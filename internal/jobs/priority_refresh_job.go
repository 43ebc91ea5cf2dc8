package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type recomputeHandler interface {
	Handle(ctx context.Context, cmd commands.RecomputePrioritiesCommand) error
}

// PriorityRefreshJob rescores every order on a schedule. Each run discards any
// manual ordering, the same as POST /orders/recompute, so the job is disabled
// unless a schedule is given.
type PriorityRefreshJob struct {
	handler  recomputeHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPriorityRefreshJob(handler recomputeHandler, schedule string, logger *slog.Logger) *PriorityRefreshJob {
	return &PriorityRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "priority_refresh_job"),
	}
}

// Enabled reports whether the job has a schedule.
func (j *PriorityRefreshJob) Enabled() bool {
	return j.schedule != ""
}

func (j *PriorityRefreshJob) Start() error {
	if !j.Enabled() {
		j.logger.InfoContext(context.Background(), "Priority refresh job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Priority refresh job started", "schedule", j.schedule)
	return nil
}

// Run executes a single refresh.
func (j *PriorityRefreshJob) Run() {
	ctx := context.Background()
	if err := j.handler.Handle(ctx, commands.NewRecomputePrioritiesCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Priority refresh job failed", "error", err)
	}
}

func (j *PriorityRefreshJob) Stop() {
	if !j.Enabled() {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Priority refresh job stopped")
}
