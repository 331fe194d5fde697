package commands

import (
	"context"
	"fmt"

	"fleet/internal/pkg/errs"
)

// UpdateCustomerCommandHandler edits a customer under a row lock. Moving the customer is refused
// unless the new neighborhood is on the delivery map.
type UpdateCustomerCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory RegistryUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if n := cmd.Neighborhood(); n != nil {
		known, err := uow.NeighborhoodRegistry().Exists(ctx, *n)
		if err != nil {
			return err
		}
		if !known {
			return errs.NewValueIsInvalidErrorWithCause("neighborhood",
				fmt.Errorf("%q is not a served neighborhood", n.Name()))
		}
	}

	repo := uow.CustomerRepository()
	c, err := repo.GetForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil {
		if err = c.Rename(*name); err != nil {
			return err
		}
	}
	if phone := cmd.Phone(); phone != nil {
		c.ChangePhone(*phone)
	}
	if address := cmd.Address(); address != nil {
		c.ChangeAddress(*address)
	}
	if n := cmd.Neighborhood(); n != nil {
		if err = c.MoveTo(*n); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
