package commands

import (
	"context"
	"log/slog"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores a new prepared order and then tries to assign a driver to it.
// The assignment runs after the order is committed; its result is logged and never turns a
// successful creation into a failure.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   DriverAssigner
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	assigner DriverAssigner,
	clock kernel.Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		clock:      clock,
		logger:     logger.With("component", "create-order"),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.insert(ctx, cmd); err != nil {
		return err
	}

	h.tryAssign(ctx, cmd.OrderID())
	return nil
}

func (h CreateOrderCommandHandler) insert(ctx context.Context, cmd CreateOrderCommand) error {
	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Value(),
		cmd.PaymentMethod(),
		cmd.BoxCount(),
		cmd.HasBundle(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) tryAssign(ctx context.Context, orderID kernel.UUID) {
	cmd, err := NewAssignDriverCommand(orderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "cannot build assignment command", "order_id", orderID.String(), "error", err)
		return
	}

	outcome, err := h.assigner.Handle(ctx, cmd)
	switch {
	case err != nil:
		h.logger.WarnContext(ctx, "driver assignment failed", "order_id", orderID.String(), "error", err)
	case outcome.Assigned:
		h.logger.InfoContext(ctx, "driver assigned",
			"order_id", orderID.String(),
			"driver_id", outcome.DriverID.String(),
			"reason", string(outcome.Reason),
		)
	default:
		h.logger.InfoContext(ctx, "order left unassigned",
			"order_id", orderID.String(),
			"skip_reason", string(outcome.SkipReason),
		)
	}
}
