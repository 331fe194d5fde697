package neighborhoodrepo

import (
	"context"
	"time"

	"fleet/internal/adapters/out/postgres/pgerrors"
	"fleet/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type NeighborhoodDTO struct {
	Name      string    `gorm:"type:varchar(100);primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

func (NeighborhoodDTO) TableName() string {
	return "neighborhoods"
}

type GormNeighborhoodRegistry struct {
	db *gorm.DB
}

func NewGormNeighborhoodRegistry(db *gorm.DB) *GormNeighborhoodRegistry {
	return &GormNeighborhoodRegistry{db: db}
}

// Add registers n. Registering an existing name fails with an errs.BusinessRuleError.
func (r *GormNeighborhoodRegistry) Add(ctx context.Context, n kernel.Neighborhood) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&NeighborhoodDTO{Name: n.Name()}).Error; err != nil {
		return pgerrors.Classify("neighborhood", err)
	}
	return nil
}

func (r *GormNeighborhoodRegistry) Exists(ctx context.Context, n kernel.Neighborhood) (bool, error) {
	if err := n.Validate(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&NeighborhoodDTO{}).Where("name = ?", n.Name()).Count(&count).Error; err != nil {
		return false, pgerrors.Classify("neighborhood", err)
	}
	return count > 0, nil
}

func (r *GormNeighborhoodRegistry) List(ctx context.Context) ([]kernel.Neighborhood, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&NeighborhoodDTO{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, pgerrors.Classify("neighborhood", err)
	}

	neighborhoods := make([]kernel.Neighborhood, 0, len(names))
	for _, name := range names {
		n, err := kernel.NewNeighborhood(name)
		if err != nil {
			return nil, err
		}
		neighborhoods = append(neighborhoods, n)
	}
	return neighborhoods, nil
}
