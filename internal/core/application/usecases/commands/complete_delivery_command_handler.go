package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler closes a dispatched order and returns its boxes to the driver.
// A driver whose last order was delivered becomes available again.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
	retry      RetryPolicy
	clock      kernel.Clock
}

func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	lifecycle services.OrderLifecycle,
	retry RetryPolicy,
	clock kernel.Clock,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		retry:      retry,
		clock:      clock,
	}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeOrderAndDriver(ctx, h.uowFactory, h.retry, cmd.OrderID(),
		func(o *order.Order) bool { return o.Status() == order.Dispatched },
		func(o *order.Order, d *driver.Driver) error {
			return h.lifecycle.Deliver(o, d, h.clock.Now(), cmd.Payment())
		},
	)
}
