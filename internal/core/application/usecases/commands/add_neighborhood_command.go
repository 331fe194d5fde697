package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrAddNeighborhoodCommandIsNotConstructed = errors.New(
	"AddNeighborhoodCommand must be created via NewAddNeighborhoodCommand constructor",
)

// AddNeighborhoodCommand puts a neighborhood on the delivery map.
type AddNeighborhoodCommand struct { //nolint:recvcheck //using for validation
	neighborhood kernel.Neighborhood

	guard guard.ConstructorGuard
}

func NewAddNeighborhoodCommand(name string) (AddNeighborhoodCommand, error) {
	n, err := kernel.NewNeighborhood(name)
	if err != nil {
		return AddNeighborhoodCommand{}, err
	}

	return AddNeighborhoodCommand{
		neighborhood: n,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AddNeighborhoodCommand) Validate() error {
	return c.guard.Validate(ErrAddNeighborhoodCommandIsNotConstructed)
}

func (c AddNeighborhoodCommand) Neighborhood() kernel.Neighborhood {
	return c.neighborhood
}
