package queries

import (
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerView struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	Address      string
	Neighborhood string
}

const customerColumns = `id, name, phone, address, neighborhood`

type customerRow struct {
	ID           uuid.UUID
	Name         string
	Phone        *string
	Address      *string
	Neighborhood string
}

func (r customerRow) toView() (CustomerView, error) {
	id, err := kernel.UUIDFromRaw(r.ID)
	if err != nil {
		return CustomerView{}, err
	}

	return CustomerView{
		ID:           id,
		Name:         r.Name,
		Phone:        deref(r.Phone),
		Address:      deref(r.Address),
		Neighborhood: r.Neighborhood,
	}, nil
}
