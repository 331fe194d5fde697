package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
)

// UpdateOrderCommandHandler edits a prepared order. A box count change on an assigned order
// moves the driver's reservation in the same transaction and is refused when it no longer fits.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
	retry      RetryPolicy
	clock      kernel.Clock
}

func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	lifecycle services.OrderLifecycle,
	retry RetryPolicy,
	clock kernel.Clock,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		retry:      retry,
		clock:      clock,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rev := cmd.Revision()
	return changeOrderAndDriver(ctx, h.uowFactory, h.retry, cmd.OrderID(),
		func(o *order.Order) bool {
			return h.lifecycle.NeedsDriverToRevise(o, rev)
		},
		func(o *order.Order, d *driver.Driver) error {
			return h.lifecycle.Revise(o, d, rev, h.clock.Now())
		},
	)
}
