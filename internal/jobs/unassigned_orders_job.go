package jobs

import (
	"context"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingOrdersAssigner runs one sweep over prepared orders without a driver.
type PendingOrdersAssigner interface {
	Handle(ctx context.Context, cmd commands.AssignPendingOrdersCommand) (commands.PendingAssignmentSummary, error)
}

// UnassignedOrdersJob gives orders that were created while no driver had room another
// assignment attempt on a schedule.
type UnassignedOrdersJob struct {
	handler   PendingOrdersAssigner
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewUnassignedOrdersJob accepts standard five-field cron expressions, six fields with seconds,
// and descriptors such as "@every 30s".
func NewUnassignedOrdersJob(
	handler PendingOrdersAssigner,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *UnassignedOrdersJob {
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	return &UnassignedOrdersJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "unassigned_orders_job"),
	}
}

func (j *UnassignedOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unassigned orders job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single sweep.
func (j *UnassignedOrdersJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewAssignPendingOrdersCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Unassigned orders job misconfigured", "error", err)
		return
	}

	summary, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Unassigned orders job failed", "error", err)
		return
	}
	if summary.Scanned > 0 {
		j.logger.InfoContext(ctx, "Unassigned orders swept",
			"scanned", summary.Scanned,
			"assigned", summary.Assigned,
			"skipped", summary.Skipped,
			"failed", summary.Failed,
		)
	}
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *UnassignedOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Unassigned orders job stopped")
}
