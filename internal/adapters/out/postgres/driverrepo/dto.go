package driverrepo

import (
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DriverDTO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name                 string         `gorm:"type:varchar(255);not null"`
	Phone                string         `gorm:"type:varchar(32)"`
	Status               string         `gorm:"type:varchar(16);not null;index"`
	CoveredNeighborhoods pq.StringArray `gorm:"type:text[];not null"`
	CurrentLoadBoxes     int            `gorm:"not null;default:0;check:chk_drivers_load,current_load_boxes BETWEEN 0 AND 20"`
	CurrentOrderCount    int            `gorm:"not null;default:0;check:chk_drivers_order_count,current_order_count >= 0"`
	LastAssignmentAt     *time.Time
	CreatedAt            time.Time `gorm:"not null"`
	Version              int64     `gorm:"not null;default:1"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

var mutableColumns = []string{
	"name",
	"phone",
	"status",
	"covered_neighborhoods",
	"current_load_boxes",
	"current_order_count",
	"last_assignment_at",
	"version",
}

func fromDomain(d *driver.Driver) DriverDTO {
	covered := d.CoveredNeighborhoods()
	names := make(pq.StringArray, 0, len(covered))
	for _, n := range covered {
		names = append(names, n.Name())
	}

	return DriverDTO{
		ID:                   d.ID().Raw(),
		Name:                 d.Name(),
		Phone:                d.Phone(),
		Status:               d.Status().String(),
		CoveredNeighborhoods: names,
		CurrentLoadBoxes:     d.CurrentLoadBoxes(),
		CurrentOrderCount:    d.CurrentOrderCount(),
		LastAssignmentAt:     d.LastAssignmentAt(),
		Version:              d.Version(),
	}
}

func updates(dto DriverDTO) map[string]any {
	return map[string]any{
		"name":                  dto.Name,
		"phone":                 dto.Phone,
		"status":                dto.Status,
		"covered_neighborhoods": dto.CoveredNeighborhoods,
		"current_load_boxes":    dto.CurrentLoadBoxes,
		"current_order_count":   dto.CurrentOrderCount,
		"last_assignment_at":    dto.LastAssignmentAt,
		"version":               dto.Version + 1,
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	neighborhoods := make([]kernel.Neighborhood, 0, len(dto.CoveredNeighborhoods))
	for _, name := range dto.CoveredNeighborhoods {
		n, nErr := kernel.NewNeighborhood(name)
		if nErr != nil {
			return nil, nErr
		}
		neighborhoods = append(neighborhoods, n)
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Phone,
		status,
		neighborhoods,
		dto.CurrentLoadBoxes,
		dto.CurrentOrderCount,
		dto.LastAssignmentAt,
		dto.Version,
	)
}
