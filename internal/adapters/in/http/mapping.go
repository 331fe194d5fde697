package http

import (
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/generated/servers"
)

func toOrder(v queries.OrderView) servers.Order {
	o := servers.Order{
		Id:               v.ID.Raw(),
		CustomerId:       v.CustomerID.Raw(),
		Value:            v.Value,
		PaymentMethod:    servers.PaymentMethod(v.PaymentMethod),
		BoxCount:         v.BoxCount,
		HasBundle:        v.HasBundle,
		Status:           servers.OrderStatus(v.Status),
		AssignmentReason: optional(v.AssignmentReason),
		CreatedAt:        v.CreatedAt,
		AssignedAt:       v.AssignedAt,
		DispatchedAt:     v.DispatchedAt,
		DeliveredAt:      v.DeliveredAt,
		CancelledAt:      v.CancelledAt,
		PaidAmount:       v.PaidAmount,
		PaidMethod:       optional(v.PaidMethod),
		SettledBy:        optional(v.SettledBy),
		SettledAt:        v.SettledAt,
	}
	if v.DriverID != nil {
		driverID := v.DriverID.Raw()
		o.DriverId = &driverID
	}
	return o
}

func toDriver(v queries.DriverView) servers.Driver {
	neighborhoods := v.CoveredNeighborhoods
	if neighborhoods == nil {
		neighborhoods = []string{}
	}
	return servers.Driver{
		Id:                v.ID.Raw(),
		Name:              v.Name,
		Phone:             optional(v.Phone),
		Status:            servers.DriverStatus(v.Status),
		Neighborhoods:     neighborhoods,
		CurrentLoadBoxes:  v.CurrentLoadBoxes,
		CurrentOrderCount: v.CurrentOrderCount,
		LastAssignmentAt:  v.LastAssignmentAt,
	}
}

func toCustomer(v queries.CustomerView) servers.Customer {
	return servers.Customer{
		Id:           v.ID.Raw(),
		Name:         v.Name,
		Phone:        optional(v.Phone),
		Address:      v.Address,
		Neighborhood: v.Neighborhood,
	}
}

// optional maps the empty string to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
