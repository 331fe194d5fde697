package queries

import (
	"context"
	"time"

	"fleet/internal/adapters/out/postgres/pgerrors"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const driverColumns = `
	id,
	name,
	phone,
	status,
	covered_neighborhoods,
	current_load_boxes,
	current_order_count,
	last_assignment_at`

type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle returns drivers sorted by name, then id.
func (h GetAllDriversQueryHandler) Handle(ctx context.Context, query GetAllDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanDrivers(h.db.WithContext(ctx).Raw(`
		SELECT ` + driverColumns + `
		FROM drivers
		ORDER BY name, id
	`))
}

func scanDrivers(query *gorm.DB) ([]DriverView, error) {
	drivers := make([]DriverView, 0)

	rows, err := query.Rows()
	if err != nil {
		return nil, pgerrors.Classify("driver", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view       DriverView
			id         uuid.UUID
			phone      *string
			covered    pq.StringArray
			lastAssign *time.Time
		)

		err = rows.Scan(
			&id,
			&view.Name,
			&phone,
			&view.Status,
			&covered,
			&view.CurrentLoadBoxes,
			&view.CurrentOrderCount,
			&lastAssign,
		)
		if err != nil {
			return nil, pgerrors.Classify("driver", err)
		}

		driverID, idErr := kernel.UUIDFromRaw(id)
		if idErr != nil {
			return nil, idErr
		}
		view.ID = driverID
		view.Phone = deref(phone)
		view.CoveredNeighborhoods = []string(covered)
		view.LastAssignmentAt = utc(lastAssign)
		drivers = append(drivers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerrors.Classify("driver", err)
	}

	return drivers, nil
}
