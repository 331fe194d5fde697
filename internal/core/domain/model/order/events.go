package order

import (
	"time"

	"fleet/internal/core/domain/model/kernel"
)

type EventName string

const (
	EventRevised    EventName = "order.revised"
	EventAssigned   EventName = "order.assigned"
	EventDispatched EventName = "order.dispatched"
	EventDelivered  EventName = "order.delivered"
	EventCancelled  EventName = "order.cancelled"
	EventSettled    EventName = "order.settled"
)

// Event is raised by a successful transition and published once the transaction commits.
type Event struct {
	ID         kernel.UUID
	Name       EventName
	OrderID    kernel.UUID
	DriverID   *kernel.UUID
	Status     Status
	OccurredAt time.Time
}

func (o *Order) raise(name EventName, at time.Time) {
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Name:       name,
		OrderID:    o.id,
		DriverID:   o.driverID,
		Status:     o.status,
		OccurredAt: at,
	})
}

// DomainEvents returns the events raised since the order was loaded or last cleared.
func (o *Order) DomainEvents() []Event {
	return append([]Event(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}
