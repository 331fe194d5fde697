package commands

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a driver with an empty vehicle.
// An empty status means the driver starts available.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	phone         string
	status        driver.Status
	neighborhoods []kernel.Neighborhood

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	phone string,
	status string,
	neighborhoods []string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setStatus(status),
		cmd.setNeighborhoods(neighborhoods),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) Phone() string {
	return c.phone
}

func (c CreateDriverCommand) Status() driver.Status {
	return c.status
}

func (c CreateDriverCommand) Neighborhoods() []kernel.Neighborhood {
	return append([]kernel.Neighborhood(nil), c.neighborhoods...)
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return driver.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		c.status = driver.Available
		return nil
	}

	s, err := driver.StatusFromString(strings.TrimSpace(status))
	if err != nil {
		return err
	}

	c.status = s
	return nil
}

func (c *CreateDriverCommand) setNeighborhoods(names []string) error {
	if len(names) == 0 {
		return driver.ErrNeighborhoodsAreRequired
	}

	neighborhoods := make([]kernel.Neighborhood, 0, len(names))
	var errList []error
	for _, name := range names {
		n, err := kernel.NewNeighborhood(name)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		neighborhoods = append(neighborhoods, n)
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	c.neighborhoods = neighborhoods
	return nil
}
