package jobs

import (
	"fmt"
	"log/slog"
)

// Config controls the scheduled jobs. An empty AssignmentSchedule disables the sweep.
type Config struct {
	AssignmentSchedule  string
	AssignmentBatchSize int
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	unassignedOrdersJob *UnassignedOrdersJob
}

func NewJobManager(pendingHandler PendingOrdersAssigner, cfg Config, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if cfg.AssignmentSchedule != "" {
		jm.unassignedOrdersJob = NewUnassignedOrdersJob(pendingHandler, cfg.AssignmentSchedule,
			cfg.AssignmentBatchSize, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
func (jm *JobManager) StartAll() error {
	if jm.unassignedOrdersJob != nil {
		if err := jm.unassignedOrdersJob.Start(); err != nil {
			return fmt.Errorf("failed to start unassigned orders job: %w", err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.unassignedOrdersJob != nil {
		jm.unassignedOrdersJob.Stop()
	}
}
