package customerrepo

import (
	"time"

	"fleet/internal/core/domain/model/customer"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	Address      string    `gorm:"type:varchar(512)"`
	Neighborhood string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

var mutableColumns = []string{
	"name",
	"phone",
	"address",
	"neighborhood",
}

func updates(dto CustomerDTO) map[string]any {
	return map[string]any{
		"name":         dto.Name,
		"phone":        dto.Phone,
		"address":      dto.Address,
		"neighborhood": dto.Neighborhood,
	}
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().Raw(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		Address:      c.Address(),
		Neighborhood: c.Neighborhood().Name(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	n, err := kernel.NewNeighborhood(dto.Neighborhood)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(id, dto.Name, dto.Phone, dto.Address, n)
}
