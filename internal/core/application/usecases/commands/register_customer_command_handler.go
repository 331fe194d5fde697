package commands

import (
	"context"
	"fmt"

	"fleet/internal/core/domain/model/customer"
	"fleet/internal/pkg/errs"
)

// RegisterCustomerCommandHandler stores a customer whose neighborhood is on the delivery map.
type RegisterCustomerCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory RegistryUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Phone(), cmd.Address(), cmd.Neighborhood())
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

	known, err := uow.NeighborhoodRegistry().Exists(ctx, cmd.Neighborhood())
	if err != nil {
		return err
	}
	if !known {
		return errs.NewValueIsInvalidErrorWithCause("neighborhood",
			fmt.Errorf("%q is not a served neighborhood", cmd.Neighborhood().Name()))
	}

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
