package commands

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand edits a registered customer. Nil fields keep their stored value.
// A new neighborhood must be one the registry serves.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	name         *string
	phone        *string
	address      *string
	neighborhood *kernel.Neighborhood

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name *string,
	phone *string,
	address *string,
	neighborhood *string,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		phone:   trimmed(phone),
		address: trimmed(address),
		guard:   guard.NewConstructorGuard(),
	}

	if name == nil && phone == nil && address == nil && neighborhood == nil {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("changes")
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setNeighborhood(neighborhood),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c UpdateCustomerCommand) Name() *string {
	return c.name
}

func (c UpdateCustomerCommand) Phone() *string {
	return c.phone
}

func (c UpdateCustomerCommand) Address() *string {
	return c.address
}

// Neighborhood is nil when the customer stays where they are.
func (c UpdateCustomerCommand) Neighborhood() *kernel.Neighborhood {
	return c.neighborhood
}

func (c *UpdateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *UpdateCustomerCommand) setName(name *string) error {
	if name == nil {
		return nil
	}

	n := strings.TrimSpace(*name)
	if n == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = &n
	return nil
}

func (c *UpdateCustomerCommand) setNeighborhood(name *string) error {
	if name == nil {
		return nil
	}

	n, err := kernel.NewNeighborhood(*name)
	if err != nil {
		return err
	}

	c.neighborhood = &n
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
