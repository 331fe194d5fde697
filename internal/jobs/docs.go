// Package jobs provides scheduled background tasks for the fleet service.
//
// Jobs are built on github.com/robfig/cron/v3 and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(assignPendingHandler, jobs.Config{
//		AssignmentSchedule:  "@every 30s",
//		AssignmentBatchSize: 50,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// UnassignedOrdersJob retries the driver assignment of prepared orders that were left without
// a driver, oldest first. A sweep that is still running when the next tick fires is skipped.
//
// # Error Handling
//
// Failures of single orders are counted and logged by the command handler; the job logs only
// failures of the whole sweep.
package jobs
