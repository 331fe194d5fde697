package orderrepo

import (
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Value            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod    string          `gorm:"type:varchar(32);not null"`
	BoxCount         int             `gorm:"not null;check:chk_orders_box_count,box_count >= 0"`
	HasBundle        bool            `gorm:"not null"`
	Status           string          `gorm:"type:varchar(16);not null;index:idx_orders_status_created,priority:1"`
	DriverID         *uuid.UUID      `gorm:"type:uuid;index"`
	AssignmentReason *string         `gorm:"type:varchar(64)"`
	CreatedAt        time.Time       `gorm:"not null;index:idx_orders_status_created,priority:2,sort:desc"`
	AssignedAt       *time.Time
	DispatchedAt     *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	PaidAmount       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	PaidMethod       *string             `gorm:"type:varchar(64)"`
	SettledBy        *string             `gorm:"type:varchar(128)"`
	SettledAt        *time.Time
	Version          int64 `gorm:"not null;default:1"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// mutableColumns are the only columns a lifecycle transition or an edit may change.
var mutableColumns = []string{
	"value",
	"payment_method",
	"box_count",
	"has_bundle",
	"status",
	"driver_id",
	"assignment_reason",
	"assigned_at",
	"dispatched_at",
	"delivered_at",
	"cancelled_at",
	"paid_amount",
	"paid_method",
	"settled_by",
	"settled_at",
	"version",
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID().Raw(),
		CustomerID:    o.CustomerID().Raw(),
		Value:         o.Value(),
		PaymentMethod: o.PaymentMethod().String(),
		BoxCount:      o.BoxCount(),
		HasBundle:     o.HasBundle(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		AssignedAt:    o.AssignedAt(),
		DispatchedAt:  o.DispatchedAt(),
		DeliveredAt:   o.DeliveredAt(),
		CancelledAt:   o.CancelledAt(),
		SettledAt:     o.SettledAt(),
		Version:       o.Version(),
	}

	if id := o.Driver(); id != nil {
		raw := id.Raw()
		dto.DriverID = &raw
	}
	if reason := o.AssignmentReason(); reason != "" {
		s := reason.String()
		dto.AssignmentReason = &s
	}
	if p := o.Payment(); p != nil {
		dto.PaidAmount = decimal.NewNullDecimal(p.Amount())
		method := p.Method()
		dto.PaidMethod = &method
	}
	if by := o.SettledBy(); by != "" {
		dto.SettledBy = &by
	}

	return dto
}

// updates holds the allow-listed columns for an UPDATE that bumps the version.
func updates(dto OrderDTO) map[string]any {
	return map[string]any{
		"value":             dto.Value,
		"payment_method":    dto.PaymentMethod,
		"box_count":         dto.BoxCount,
		"has_bundle":        dto.HasBundle,
		"status":            dto.Status,
		"driver_id":         dto.DriverID,
		"assignment_reason": dto.AssignmentReason,
		"assigned_at":       dto.AssignedAt,
		"dispatched_at":     dto.DispatchedAt,
		"delivered_at":      dto.DeliveredAt,
		"cancelled_at":      dto.CancelledAt,
		"paid_amount":       dto.PaidAmount,
		"paid_method":       dto.PaidMethod,
		"settled_by":        dto.SettledBy,
		"settled_at":        dto.SettledAt,
		"version":           dto.Version + 1,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromRaw(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	state := order.State{
		ID:            id,
		CustomerID:    customerID,
		Value:         dto.Value,
		PaymentMethod: method,
		BoxCount:      dto.BoxCount,
		HasBundle:     dto.HasBundle,
		Status:        status,
		CreatedAt:     dto.CreatedAt,
		AssignedAt:    dto.AssignedAt,
		DispatchedAt:  dto.DispatchedAt,
		DeliveredAt:   dto.DeliveredAt,
		CancelledAt:   dto.CancelledAt,
		SettledAt:     dto.SettledAt,
		Version:       dto.Version,
	}

	if dto.DriverID != nil {
		driverID, driverErr := kernel.UUIDFromRaw(*dto.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}
		state.DriverID = &driverID
	}
	if dto.AssignmentReason != nil {
		state.AssignmentReason = order.AssignmentReason(*dto.AssignmentReason)
	}
	if dto.PaidAmount.Valid && dto.PaidMethod != nil {
		payment, paymentErr := order.NewPayment(dto.PaidAmount.Decimal, *dto.PaidMethod)
		if paymentErr != nil {
			return nil, paymentErr
		}
		state.Payment = &payment
	}
	if dto.SettledBy != nil {
		state.SettledBy = *dto.SettledBy
	}

	return order.RestoreOrder(state)
}
