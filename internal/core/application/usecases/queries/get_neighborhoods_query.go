package queries

import (
	"context"
	"errors"

	"fleet/internal/adapters/out/postgres/pgerrors"
	"fleet/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetNeighborhoodsQueryIsNotConstructed = errors.New(
	"GetNeighborhoodsQuery must be created via NewGetNeighborhoodsQuery constructor",
)

type GetNeighborhoodsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetNeighborhoodsQuery() GetNeighborhoodsQuery {
	return GetNeighborhoodsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetNeighborhoodsQuery) Validate() error {
	return q.guard.Validate(ErrGetNeighborhoodsQueryIsNotConstructed)
}

type GetNeighborhoodsQueryHandler struct {
	db *gorm.DB
}

func NewGetNeighborhoodsQueryHandler(db *gorm.DB) GetNeighborhoodsQueryHandler {
	return GetNeighborhoodsQueryHandler{db: db}
}

// Handle returns the served neighborhood names in alphabetical order.
func (h GetNeighborhoodsQueryHandler) Handle(ctx context.Context, query GetNeighborhoodsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, 0)
	err := h.db.WithContext(ctx).Raw(`SELECT name FROM neighborhoods ORDER BY name`).Scan(&names).Error
	if err != nil {
		return nil, pgerrors.Classify("neighborhood", err)
	}

	return names, nil
}
