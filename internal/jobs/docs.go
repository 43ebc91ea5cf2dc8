// Package jobs provides scheduled background tasks for the fulfillment board.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field enabled.
//
// # Available Jobs
//
//  1. PriorityRefreshJob rescores every order against the clock and restores score order.
//     Disabled unless PRIORITY_REFRESH_SCHEDULE is set, since a run undoes manual ordering.
//  2. AutoAssignmentJob assigns the top unassigned pending order to the least loaded handler.
//     Disabled unless AUTO_ASSIGN_SCHEDULE is set.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(recomputeHandler, assignNextHandler, jobs.Schedules{
//		PriorityRefresh: "0 * * * * *",
//		AutoAssignment:  "*/10 * * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A job with an empty schedule is never registered.
//
// # Error Handling
//
// The assignment job stays quiet when there is no order to assign or no handler
// to take it. Every other failure is logged. A failed start stops jobs already running.
package jobs
