package ports

import (
	"context"

	"fleet/internal/core/domain/model/customer"
	"fleet/internal/core/domain/model/kernel"
)

// CustomerDirectory resolves the neighborhood a customer lives in.
// ok is false when the customer is unknown or has no neighborhood.
type CustomerDirectory interface {
	GetNeighborhood(ctx context.Context, customerID kernel.UUID) (n kernel.Neighborhood, ok bool, err error)
}

// CustomerRepository stores customers registered through the API.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	Update(ctx context.Context, aggregate *customer.Customer) error
}
