// Package customer holds the customer record the assignment engine resolves a neighborhood from.
package customer

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

type Customer struct {
	id           kernel.UUID
	name         string
	phone        string
	address      string
	neighborhood kernel.Neighborhood
	guard        guard.ConstructorGuard
}

func NewCustomer(id kernel.UUID, name, phone, address string, neighborhood kernel.Neighborhood) (*Customer, error) {
	c := &Customer{
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	var idErr error
	if err := id.Validate(); err != nil {
		idErr = err
	}
	if err := errors.Join(idErr, nameErr, neighborhood.Validate()); err != nil {
		return nil, err
	}

	c.id = id
	c.name = name
	c.neighborhood = neighborhood
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) Neighborhood() kernel.Neighborhood {
	return c.neighborhood
}

func (c *Customer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) ChangePhone(phone string) {
	c.phone = strings.TrimSpace(phone)
}

func (c *Customer) ChangeAddress(address string) {
	c.address = strings.TrimSpace(address)
}

// MoveTo changes the neighborhood used to pick drivers for the customer's future orders.
// Orders already assigned keep their driver.
func (c *Customer) MoveTo(n kernel.Neighborhood) error {
	if err := n.Validate(); err != nil {
		return err
	}
	c.neighborhood = n
	return nil
}
