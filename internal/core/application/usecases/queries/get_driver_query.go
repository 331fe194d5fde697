package queries

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

type GetDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}
	return GetDriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

type GetDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle returns one driver or errs.ObjectNotFoundError.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverView, error) {
	if err := query.Validate(); err != nil {
		return DriverView{}, err
	}

	drivers, err := scanDrivers(h.db.WithContext(ctx).Raw(`
		SELECT `+driverColumns+`
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Raw()))
	if err != nil {
		return DriverView{}, err
	}
	if len(drivers) == 0 {
		return DriverView{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}

	return drivers[0], nil
}
