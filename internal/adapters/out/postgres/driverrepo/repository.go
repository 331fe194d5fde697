package driverrepo

import (
	"context"
	"errors"

	"fleet/internal/adapters/out/postgres/pgerrors"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify("driver", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Select(mutableColumns).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(updates(dto))
	if result.Error != nil {
		return pgerrors.Classify("driver", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return pgerrors.Classify("driver", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
		}
		return errs.NewConflictError("driver " + aggregate.ID().String() + " was modified concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.get(ctx, id, r.db.WithContext(ctx))
}

func (r *GormDriverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.get(ctx, id, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}))
}

func (r *GormDriverRepository) FindAvailableForNeighborhood(
	ctx context.Context,
	n kernel.Neighborhood,
) ([]*driver.Driver, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND ? = ANY(covered_neighborhoods)", driver.Available.String(), n.Name()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrors.Classify("driver", err)
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

func (r *GormDriverRepository) get(_ context.Context, id kernel.UUID, query *gorm.DB) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := query.First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, pgerrors.Classify("driver", err)
	}

	return toDomain(dto)
}
