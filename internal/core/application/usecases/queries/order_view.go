package queries

import (
	"time"

	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model of an order as the API shows it.
type OrderView struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Value            decimal.Decimal
	PaymentMethod    string
	BoxCount         int
	HasBundle        bool
	Status           string
	DriverID         *kernel.UUID
	AssignmentReason string
	CreatedAt        time.Time
	AssignedAt       *time.Time
	DispatchedAt     *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	PaidAmount       *decimal.Decimal
	PaidMethod       string
	SettledBy        string
	SettledAt        *time.Time
}

const orderColumns = `
	id,
	customer_id,
	value,
	payment_method,
	box_count,
	has_bundle,
	status,
	driver_id,
	assignment_reason,
	created_at,
	assigned_at,
	dispatched_at,
	delivered_at,
	cancelled_at,
	paid_amount,
	paid_method,
	settled_by,
	settled_at`

// orderRow receives one row selected with orderColumns.
type orderRow struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	Value            decimal.Decimal
	PaymentMethod    string
	BoxCount         int
	HasBundle        bool
	Status           string
	DriverID         *uuid.UUID
	AssignmentReason *string
	CreatedAt        time.Time
	AssignedAt       *time.Time
	DispatchedAt     *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	PaidAmount       decimal.NullDecimal
	PaidMethod       *string
	SettledBy        *string
	SettledAt        *time.Time
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromRaw(r.ID)
	if err != nil {
		return OrderView{}, err
	}
	customerID, err := kernel.UUIDFromRaw(r.CustomerID)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		ID:               id,
		CustomerID:       customerID,
		Value:            r.Value,
		PaymentMethod:    r.PaymentMethod,
		BoxCount:         r.BoxCount,
		HasBundle:        r.HasBundle,
		Status:           r.Status,
		AssignmentReason: deref(r.AssignmentReason),
		CreatedAt:        r.CreatedAt.UTC(),
		AssignedAt:       utc(r.AssignedAt),
		DispatchedAt:     utc(r.DispatchedAt),
		DeliveredAt:      utc(r.DeliveredAt),
		CancelledAt:      utc(r.CancelledAt),
		PaidMethod:       deref(r.PaidMethod),
		SettledBy:        deref(r.SettledBy),
		SettledAt:        utc(r.SettledAt),
	}

	if r.DriverID != nil {
		driverID, idErr := kernel.UUIDFromRaw(*r.DriverID)
		if idErr != nil {
			return OrderView{}, idErr
		}
		view.DriverID = &driverID
	}
	if r.PaidAmount.Valid {
		amount := r.PaidAmount.Decimal
		view.PaidAmount = &amount
	}

	return view, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
