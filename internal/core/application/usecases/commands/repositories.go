// Package commands holds the write side of the service. Every handler validates its command,
// opens a unit of work, loads the aggregates it changes under a row lock, delegates the rule
// checks to the domain, and commits.
package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// Each handler depends on the narrowest unit of work that covers the aggregates it writes.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	NeighborhoodRegistryFactory interface {
		NeighborhoodRegistry() ports.NeighborhoodRegistry
	}

	// OrderUoW covers operations that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW covers operations that only touch drivers.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RegistryUoW covers customer and neighborhood registration.
	RegistryUoW interface {
		TxManager
		CustomerRepoFactory
		NeighborhoodRegistryFactory
	}

	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// UoW covers operations that change an order and its driver together.
	//
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil { ... }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   d, err := uow.DriverRepository().GetForUpdate(ctx, *o.Driver())
	//   ...
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
