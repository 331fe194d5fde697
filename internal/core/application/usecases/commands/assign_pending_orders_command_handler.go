package commands

import (
	"context"
	"errors"
	"log/slog"

	"fleet/internal/core/domain/model/order"
)

// PendingAssignmentSummary counts what one sweep over unassigned orders achieved.
type PendingAssignmentSummary struct {
	Scanned  int
	Assigned int
	Skipped  int
	Failed   int
}

// AssignPendingOrdersCommandHandler retries the assignment of prepared orders without a driver.
// Each order goes through the regular assignment in its own transaction, so one failure does
// not affect the others.
type AssignPendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   DriverAssigner
	logger     *slog.Logger
}

func NewAssignPendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	assigner DriverAssigner,
	logger *slog.Logger,
) AssignPendingOrdersCommandHandler {
	return AssignPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		logger:     logger.With("component", "assign-pending-orders"),
	}
}

func (h AssignPendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPendingOrdersCommand,
) (PendingAssignmentSummary, error) {
	var summary PendingAssignmentSummary
	if err := cmd.Validate(); err != nil {
		return summary, err
	}

	pending, err := h.uowFactory.Create().OrderRepository().GetUnassignedPrepared(ctx, cmd.BatchSize())
	if err != nil {
		return summary, err
	}

	for _, o := range pending {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Scanned++

		assignCmd, err := NewAssignDriverCommand(o.ID())
		if err != nil {
			return summary, err
		}

		outcome, err := h.assigner.Handle(ctx, assignCmd)
		switch {
		case errors.Is(err, order.ErrAlreadyAssigned), errors.Is(err, order.ErrNotPrepared):
			// Assigned or closed by someone else since the batch was read.
			summary.Skipped++
		case err != nil:
			summary.Failed++
			h.logger.WarnContext(ctx, "pending order assignment failed", "orderID", o.ID().String(), "error", err)
		case outcome.Assigned:
			summary.Assigned++
		default:
			summary.Skipped++
		}
	}

	return summary, nil
}
