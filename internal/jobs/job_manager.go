package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions (with seconds) for each job.
type Schedules struct {
	PriorityRefresh string
	AutoAssignment  string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	priorityRefreshJob *PriorityRefreshJob
	autoAssignmentJob  *AutoAssignmentJob
}

func NewJobManager(
	recompute recomputeHandler,
	assignNext assignNextHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		priorityRefreshJob: NewPriorityRefreshJob(recompute, schedules.PriorityRefresh, logger),
		autoAssignmentJob:  NewAutoAssignmentJob(assignNext, schedules.AutoAssignment, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.priorityRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start priority refresh job: %w", err)
	}

	if err := jm.autoAssignmentJob.Start(); err != nil {
		jm.priorityRefreshJob.Stop()
		return fmt.Errorf("failed to start auto assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ticks to finish.
func (jm *JobManager) StopAll() {
	jm.autoAssignmentJob.Stop()
	jm.priorityRefreshJob.Stop()
}
