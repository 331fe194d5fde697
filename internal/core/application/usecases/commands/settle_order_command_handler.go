package commands

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
)

// SettleOrderCommandHandler records the cashier settlement of a delivered order.
type SettleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	retry      RetryPolicy
	clock      kernel.Clock
}

func NewSettleOrderCommandHandler(uowFactory OrderUoWFactory, retry RetryPolicy, clock kernel.Clock) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory: uowFactory,
		retry:      retry,
		clock:      clock,
	}
}

func (h SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, h.retry, func(ctx context.Context) error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.Settle(cmd.Cashier(), h.clock.Now()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
