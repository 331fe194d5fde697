package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxBoxCount bounds a single order; no driver could carry more.
const MaxBoxCount = 1000

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a delivery.
//
// Invariants:
//   - value is strictly positive, boxCount is not negative
//   - dispatched and delivered orders reference a driver
//   - a driver reference is never removed, cancelled orders keep theirs
//   - every transition stamps its own timestamp and nothing else
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	value         decimal.Decimal
	paymentMethod PaymentMethod
	boxCount      int
	hasBundle     bool
	status        Status

	driverID         *kernel.UUID
	assignmentReason AssignmentReason

	createdAt    time.Time
	assignedAt   *time.Time
	dispatchedAt *time.Time
	deliveredAt  *time.Time
	cancelledAt  *time.Time

	payment   *Payment
	settledBy string
	settledAt *time.Time

	// version is the optimistic concurrency token persisted with the row.
	version int64

	events        []Event
	isConstructed bool
}

// NewOrder creates a prepared order with no driver.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	value decimal.Decimal,
	paymentMethod PaymentMethod,
	boxCount int,
	hasBundle bool,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Prepared,
		hasBundle:     hasBundle,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setValue(value),
		o.setPaymentMethod(paymentMethod),
		o.setBoxCount(boxCount),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// State is the full persisted form of an order, used to rebuild the aggregate from storage.
type State struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Value            decimal.Decimal
	PaymentMethod    PaymentMethod
	BoxCount         int
	HasBundle        bool
	Status           Status
	DriverID         *kernel.UUID
	AssignmentReason AssignmentReason
	CreatedAt        time.Time
	AssignedAt       *time.Time
	DispatchedAt     *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	Payment          *Payment
	SettledBy        string
	SettledAt        *time.Time
	Version          int64
}

// RestoreOrder rebuilds an order loaded from storage, checking the invariants NewOrder enforces
// plus those that only apply to later statuses.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		hasBundle:        s.HasBundle,
		driverID:         s.DriverID,
		assignmentReason: s.AssignmentReason,
		assignedAt:       s.AssignedAt,
		dispatchedAt:     s.DispatchedAt,
		deliveredAt:      s.DeliveredAt,
		cancelledAt:      s.CancelledAt,
		payment:          s.Payment,
		settledBy:        s.SettledBy,
		settledAt:        s.SettledAt,
		version:          s.Version,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setValue(s.Value),
		o.setPaymentMethod(s.PaymentMethod),
		o.setBoxCount(s.BoxCount),
		o.setCreatedAt(s.CreatedAt),
		o.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	if s.AssignmentReason != "" {
		if err := s.AssignmentReason.Validate(); err != nil {
			return nil, err
		}
	}
	if s.Version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", s.Version, 1, "max int64")
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                    { return o.id }
func (o *Order) CustomerID() kernel.UUID            { return o.customerID }
func (o *Order) Value() decimal.Decimal             { return o.value }
func (o *Order) PaymentMethod() PaymentMethod       { return o.paymentMethod }
func (o *Order) BoxCount() int                      { return o.boxCount }
func (o *Order) HasBundle() bool                    { return o.hasBundle }
func (o *Order) Status() Status                     { return o.status }
func (o *Order) Driver() *kernel.UUID               { return o.driverID }
func (o *Order) AssignmentReason() AssignmentReason { return o.assignmentReason }
func (o *Order) CreatedAt() time.Time               { return o.createdAt }
func (o *Order) AssignedAt() *time.Time             { return o.assignedAt }
func (o *Order) DispatchedAt() *time.Time           { return o.dispatchedAt }
func (o *Order) DeliveredAt() *time.Time            { return o.deliveredAt }
func (o *Order) CancelledAt() *time.Time            { return o.cancelledAt }
func (o *Order) Payment() *Payment                  { return o.payment }
func (o *Order) SettledBy() string                  { return o.settledBy }
func (o *Order) SettledAt() *time.Time              { return o.settledAt }
func (o *Order) Version() int64                     { return o.version }
func (o *Order) HasDriver() bool                    { return o.driverID != nil }

// IsAssignedTo reports whether driverID holds the reservation for this order.
func (o *Order) IsAssignedTo(driverID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(driverID)
}

// Assign reserves a driver for a prepared, unassigned order. The status stays prepared.
func (o *Order) Assign(driverID kernel.UUID, reason AssignmentReason, at time.Time) error {
	if err := errors.Join(driverID.Validate(), reason.Validate()); err != nil {
		return err
	}
	if err := o.status.ValidateAssign(); err != nil {
		return err
	}
	if o.driverID != nil {
		return ErrAlreadyAssigned
	}

	o.driverID = &driverID
	o.assignmentReason = reason
	o.assignedAt = &at
	o.raise(EventAssigned, at)
	return nil
}

// Dispatch records that the assigned driver left with the order.
func (o *Order) Dispatch(at time.Time) error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	if o.driverID == nil {
		return ErrNoDriverAssigned
	}

	o.status = newStatus
	o.dispatchedAt = &at
	o.raise(EventDispatched, at)
	return nil
}

// Deliver completes a dispatched order. payment is recorded only when supplied.
func (o *Order) Deliver(at time.Time, payment *Payment) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	if payment != nil {
		p := *payment
		o.payment = &p
	}
	o.raise(EventDelivered, at)
	return nil
}

// Cancel abandons an order that is not yet delivered. The driver reference, if any, is kept.
func (o *Order) Cancel(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelledAt = &at
	o.raise(EventCancelled, at)
	return nil
}

// Settle marks a delivered order as checked by the cashier.
func (o *Order) Settle(cashier string, at time.Time) error {
	cashier = strings.TrimSpace(cashier)
	if cashier == "" {
		return errs.NewValueIsRequiredError("cashier")
	}
	if o.status != Delivered {
		return ErrNotDelivered
	}
	if o.settledAt != nil {
		return ErrAlreadySettled
	}

	o.settledBy = cashier
	o.settledAt = &at
	o.raise(EventSettled, at)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = id
	return nil
}

func (o *Order) setValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%s is not greater than 0", value))
	}
	o.value = value
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.paymentMethod = m
	return nil
}

func (o *Order) setBoxCount(n int) error {
	if n < 0 || n > MaxBoxCount {
		return errs.NewValueIsOutOfRangeError("boxCount", n, 0, MaxBoxCount)
	}
	o.boxCount = n
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = at
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := s.ValidateCanHaveDriver(o.driverID != nil); err != nil {
		return err
	}
	o.status = s
	return nil
}
