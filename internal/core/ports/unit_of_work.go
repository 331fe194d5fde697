package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction. Repositories obtained after Begin run inside it;
// obtained before Begin they run on the plain connection pool.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit commits the transaction and then publishes the events of every aggregate
	// written through the unit of work.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DriverRepository() DriverRepository
	CustomerRepository() CustomerRepository
	NeighborhoodRegistry() NeighborhoodRegistry
}
