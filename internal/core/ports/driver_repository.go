package ports

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
)

// DriverRepository persists Driver aggregates.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update fails with errs.ConflictError when the stored version differs from aggregate.Version().
	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// FindAvailableForNeighborhood returns available drivers covering n. The result is a plain
	// read and may be stale by the time it is used.
	FindAvailableForNeighborhood(ctx context.Context, n kernel.Neighborhood) ([]*driver.Driver, error)
}
