package postgres

import (
	"fleet/internal/adapters/out/postgres/customerrepo"
	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/adapters/out/postgres/neighborhoodrepo"
	"fleet/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&neighborhoodrepo.NeighborhoodDTO{},
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
	)
}
