package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
)

// DispatchOrderCommandHandler sends a prepared, assigned order out. The driver becomes en-route
// in the same transaction.
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
	retry      RetryPolicy
	clock      kernel.Clock
}

func NewDispatchOrderCommandHandler(
	uowFactory UoWFactory,
	lifecycle services.OrderLifecycle,
	retry RetryPolicy,
	clock kernel.Clock,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		retry:      retry,
		clock:      clock,
	}
}

func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeOrderAndDriver(ctx, h.uowFactory, h.retry, cmd.OrderID(),
		(*order.Order).HasDriver,
		func(o *order.Order, d *driver.Driver) error {
			return h.lifecycle.Dispatch(o, d, h.clock.Now())
		},
	)
}
