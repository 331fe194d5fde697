package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
)

// orderDriverChange mutates a locked order and, when one was requested, its locked driver.
type orderDriverChange func(o *order.Order, d *driver.Driver) error

// changeOrderAndDriver locks the order, then its driver when needsDriver reports so, applies change
// and writes both back in one transaction. The whole transaction is retried on conflict.
// Orders are always locked before drivers.
func changeOrderAndDriver(
	ctx context.Context,
	uowFactory UoWFactory,
	policy RetryPolicy,
	orderID kernel.UUID,
	needsDriver func(o *order.Order) bool,
	change orderDriverChange,
) error {
	return retryOnConflict(ctx, policy, func(ctx context.Context) error {
		uow := uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		o, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		var d *driver.Driver
		if needsDriver(o) && o.HasDriver() {
			d, err = uow.DriverRepository().GetForUpdate(ctx, *o.Driver())
			if err != nil {
				return err
			}
		}

		if err = change(o, d); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
		if d != nil {
			if err = uow.DriverRepository().Update(ctx, d); err != nil {
				return err
			}
		}

		return uow.Commit(ctx)
	})
}
