package commands

import (
	"context"
)

type AddNeighborhoodCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewAddNeighborhoodCommandHandler(uowFactory RegistryUoWFactory) AddNeighborhoodCommandHandler {
	return AddNeighborhoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the neighborhood. Adding a name twice violates the registry's primary key and is
// reported as a business rule error by the repository.
func (h AddNeighborhoodCommandHandler) Handle(ctx context.Context, cmd AddNeighborhoodCommand) error {
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

	if err := uow.NeighborhoodRegistry().Add(ctx, cmd.Neighborhood()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
