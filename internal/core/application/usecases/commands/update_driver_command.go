package commands

import (
	"errors"
	"fmt"
	"strings"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand edits a driver's profile. Nil fields keep their stored value.
// Only available and inactive can be requested as a status.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          *string
	phone         *string
	status        *driver.Status
	neighborhoods []kernel.Neighborhood

	guard guard.ConstructorGuard
}

func NewUpdateDriverCommand(
	driverID kernel.UUID,
	name *string,
	phone *string,
	status *string,
	neighborhoods *[]string,
) (UpdateDriverCommand, error) {
	cmd := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == nil && phone == nil && status == nil && neighborhoods == nil {
		return UpdateDriverCommand{}, errs.NewValueIsRequiredError("changes")
	}

	if phone != nil {
		p := strings.TrimSpace(*phone)
		cmd.phone = &p
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setStatus(status),
		cmd.setNeighborhoods(neighborhoods),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Apply writes the requested changes to d. Nothing is changed when any of them is refused.
func (c UpdateDriverCommand) Apply(d *driver.Driver) error {
	next := *d
	if c.name != nil {
		if err := next.Rename(*c.name); err != nil {
			return err
		}
	}
	if c.phone != nil {
		next.ChangePhone(*c.phone)
	}
	if c.neighborhoods != nil {
		if err := next.ChangeCoveredNeighborhoods(c.neighborhoods); err != nil {
			return err
		}
	}
	if c.status != nil {
		if err := next.ChangeStatus(*c.status); err != nil {
			return err
		}
	}

	*d = next
	return nil
}

func (c *UpdateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *UpdateDriverCommand) setName(name *string) error {
	if name == nil {
		return nil
	}

	n := strings.TrimSpace(*name)
	if n == "" {
		return driver.ErrNameIsRequired
	}

	c.name = &n
	return nil
}

func (c *UpdateDriverCommand) setStatus(status *string) error {
	if status == nil {
		return nil
	}

	s, err := driver.StatusFromString(strings.TrimSpace(*status))
	if err != nil {
		return err
	}
	if s != driver.Available && s != driver.Inactive {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q cannot be set directly, use available or inactive", s))
	}

	c.status = &s
	return nil
}

func (c *UpdateDriverCommand) setNeighborhoods(names *[]string) error {
	if names == nil {
		return nil
	}
	if len(*names) == 0 {
		return driver.ErrNeighborhoodsAreRequired
	}

	neighborhoods := make([]kernel.Neighborhood, 0, len(*names))
	var errList []error
	for _, name := range *names {
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
