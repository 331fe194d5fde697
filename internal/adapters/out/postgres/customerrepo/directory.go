package customerrepo

import (
	"context"
	"errors"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerDirectory answers neighborhood lookups for the assignment engine.
// Any storage failure is reported as errs.UpstreamUnavailableError.
type GormCustomerDirectory struct {
	db *gorm.DB
}

func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

func (d *GormCustomerDirectory) GetNeighborhood(
	ctx context.Context,
	customerID kernel.UUID,
) (kernel.Neighborhood, bool, error) {
	if customerID.IsZero() {
		return kernel.Neighborhood{}, false, nil
	}

	var dto CustomerDTO
	err := d.db.WithContext(ctx).Select("neighborhood").First(&dto, "id = ?", customerID.Raw()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Neighborhood{}, false, nil
		}
		return kernel.Neighborhood{}, false, errs.NewUpstreamUnavailableError("customer directory", err)
	}

	if strings.TrimSpace(dto.Neighborhood) == "" {
		return kernel.Neighborhood{}, false, nil
	}
	n, err := kernel.NewNeighborhood(dto.Neighborhood)
	if err != nil {
		return kernel.Neighborhood{}, false, nil //nolint:nilerr // a malformed neighborhood is treated as missing
	}
	return n, true, nil
}
