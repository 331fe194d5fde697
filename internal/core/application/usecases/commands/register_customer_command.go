package commands

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand adds a customer living in a known neighborhood.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	name         string
	phone        string
	address      string
	neighborhood kernel.Neighborhood

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	name string,
	phone string,
	address string,
	neighborhood string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setNeighborhood(neighborhood),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

func (c RegisterCustomerCommand) Address() string {
	return c.address
}

func (c RegisterCustomerCommand) Neighborhood() kernel.Neighborhood {
	return c.neighborhood
}

func (c *RegisterCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setNeighborhood(name string) error {
	n, err := kernel.NewNeighborhood(name)
	if err != nil {
		return err
	}

	c.neighborhood = n
	return nil
}
