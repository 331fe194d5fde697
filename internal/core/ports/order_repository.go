// Package ports declares what the application layer needs from storage and messaging.
// The postgres and rabbitmq adapters implement these interfaces.
package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	// Add inserts a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable columns of an order. It fails with errs.ConflictError
	// when the stored version differs from aggregate.Version().
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetUnassignedPrepared returns up to limit prepared orders without a driver, oldest first.
	GetUnassignedPrepared(ctx context.Context, limit int) ([]*order.Order, error)
}
