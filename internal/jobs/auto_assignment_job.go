package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

type assignNextHandler interface {
	Handle(ctx context.Context, cmd commands.AssignNextOrderCommand) (commands.AssignOrderResult, error)
}

// AutoAssignmentJob hands the top unassigned pending order to the least loaded
// handler on every tick. It is disabled when its schedule is empty.
type AutoAssignmentJob struct {
	handler  assignNextHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewAutoAssignmentJob(handler assignNextHandler, schedule string, logger *slog.Logger) *AutoAssignmentJob {
	return &AutoAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "auto_assignment_job"),
	}
}

// Enabled reports whether the job has a schedule.
func (j *AutoAssignmentJob) Enabled() bool {
	return j.schedule != ""
}

func (j *AutoAssignmentJob) Start() error {
	if !j.Enabled() {
		j.logger.InfoContext(context.Background(), "Auto assignment job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto assignment job started", "schedule", j.schedule)
	return nil
}

// Run executes a single assignment attempt.
func (j *AutoAssignmentJob) Run() {
	ctx := context.Background()
	result, err := j.handler.Handle(ctx, commands.NewAssignNextOrderCommand())
	if err != nil {
		// Nothing to assign or nobody to assign to is the normal idle state.
		if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, services.ErrNoHandlersAvailable) {
			j.logger.ErrorContext(ctx, "Auto assignment job failed", "error", err)
		}
		return
	}

	j.logger.InfoContext(ctx, "Order assigned",
		"orderId", result.OrderID.String(),
		"handler", result.HandlerName,
	)
}

func (j *AutoAssignmentJob) Stop() {
	if !j.Enabled() {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto assignment job stopped")
}
