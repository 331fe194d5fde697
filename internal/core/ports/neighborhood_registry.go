package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
)

// NeighborhoodRegistry is the list of neighborhoods the business delivers to.
type NeighborhoodRegistry interface {
	Add(ctx context.Context, n kernel.Neighborhood) error
	Exists(ctx context.Context, n kernel.Neighborhood) (bool, error)
	List(ctx context.Context) ([]kernel.Neighborhood, error)
}
