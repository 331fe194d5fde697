package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order that is neither delivered nor cancelled.
// Whether the driver gets the reserved boxes back depends on the lifecycle's cancel policy;
// the driver row is locked only when it is going to change.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
	retry      RetryPolicy
	clock      kernel.Clock
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	lifecycle services.OrderLifecycle,
	retry RetryPolicy,
	clock kernel.Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		retry:      retry,
		clock:      clock,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeOrderAndDriver(ctx, h.uowFactory, h.retry, cmd.OrderID(),
		h.lifecycle.NeedsDriverToCancel,
		func(o *order.Order, d *driver.Driver) error {
			return h.lifecycle.Cancel(o, d, h.clock.Now())
		},
	)
}
