package commands

import (
	"context"
)

// UpdateDriverCommandHandler edits a driver under a row lock. The write is version-checked so a
// concurrent assignment that booked the driver in the meantime forces a re-read.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	retry      RetryPolicy
}

func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory, retry RetryPolicy) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
		retry:      retry,
	}
}

func (h UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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

		repo := uow.DriverRepository()
		d, err := repo.GetForUpdate(ctx, cmd.DriverID())
		if err != nil {
			return err
		}

		if err = cmd.Apply(d); err != nil {
			return err
		}

		if err = repo.Update(ctx, d); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
