package queries

import (
	"context"

	"fleet/internal/adapters/out/postgres/pgerrors"
	"fleet/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order pages straight from the orders table.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the requested page ordered by creation time, newest first, and the number of
// orders matching the filter. Ties on creation time are broken by id so pages do not overlap.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	status := ""
	if query.Status() != order.Unknown {
		status = query.Status().String()
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM orders
		WHERE (? = '' OR status = ?)
	`, status, status).Scan(&total).Error
	if err != nil {
		return GetOrdersQueryResponse{}, pgerrors.Classify("order", err)
	}

	var rows []orderRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE (? = '' OR status = ?)
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, status, status, query.Limit(), query.offset()).Scan(&rows).Error
	if err != nil {
		return GetOrdersQueryResponse{}, pgerrors.Classify("order", err)
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.toView()
		if viewErr != nil {
			return GetOrdersQueryResponse{}, viewErr
		}
		views = append(views, view)
	}

	return GetOrdersQueryResponse{
		Orders: views,
		Total:  total,
		Page:   query.Page(),
		Limit:  query.Limit(),
	}, nil
}
