package queries

import (
	"context"

	"fleet/internal/adapters/out/postgres/pgerrors"

	"gorm.io/gorm"
)

type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle returns the requested page ordered by name, then id, and the number of matching customers.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) (GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomersQueryResponse{}, err
	}

	pattern := query.pattern()

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM customers
		WHERE name ILIKE ?
	`, pattern).Scan(&total).Error
	if err != nil {
		return GetCustomersQueryResponse{}, pgerrors.Classify("customer", err)
	}

	var rows []customerRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT `+customerColumns+`
		FROM customers
		WHERE name ILIKE ?
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`, pattern, query.Limit(), query.offset()).Scan(&rows).Error
	if err != nil {
		return GetCustomersQueryResponse{}, pgerrors.Classify("customer", err)
	}

	views := make([]CustomerView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.toView()
		if viewErr != nil {
			return GetCustomersQueryResponse{}, viewErr
		}
		views = append(views, view)
	}

	return GetCustomersQueryResponse{
		Customers: views,
		Total:     total,
		Page:      query.Page(),
		Limit:     query.Limit(),
	}, nil
}
