package services

import (
	"fmt"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
)

// CancelPolicy decides what happens to the driver's reserved capacity when an order is cancelled.
type CancelPolicy int

const (
	// CancelKeepsReservation leaves the driver's counters untouched.
	CancelKeepsReservation CancelPolicy = iota
	// CancelReleasesReservation gives the order's boxes and slot back to the driver.
	CancelReleasesReservation
)

func ParseCancelPolicy(s string) (CancelPolicy, error) {
	switch s {
	case "", "keep":
		return CancelKeepsReservation, nil
	case "release":
		return CancelReleasesReservation, nil
	default:
		return CancelKeepsReservation, errs.NewValueIsInvalidErrorWithCause(
			"cancelPolicy", fmt.Errorf("%q is not one of keep, release", s))
	}
}

func (p CancelPolicy) String() string {
	if p == CancelReleasesReservation {
		return "release"
	}
	return "keep"
}

// OrderLifecycle applies a transition to an order and the driver it references.
// A failing guard leaves both aggregates as they were.
type OrderLifecycle struct {
	cancelPolicy CancelPolicy
}

func NewOrderLifecycle(cancelPolicy CancelPolicy) OrderLifecycle {
	return OrderLifecycle{cancelPolicy: cancelPolicy}
}

func (l OrderLifecycle) CancelPolicy() CancelPolicy {
	return l.cancelPolicy
}

// Dispatch sends the order out with its driver, who becomes en-route.
func (l OrderLifecycle) Dispatch(o *order.Order, d *driver.Driver, at time.Time) error {
	if _, err := o.Status().Dispatch(); err != nil {
		return err
	}
	if !o.HasDriver() {
		return order.ErrNoDriverAssigned
	}
	if err := l.checkDriver(o, d); err != nil {
		return err
	}
	if d.CurrentOrderCount() < 1 {
		return driver.ErrNoOrdersInProgress
	}

	if err := o.Dispatch(at); err != nil {
		return err
	}
	return d.StartRoute()
}

// Deliver completes the order and frees its boxes on the driver.
func (l OrderLifecycle) Deliver(o *order.Order, d *driver.Driver, at time.Time, payment *order.Payment) error {
	if _, err := o.Status().Deliver(); err != nil {
		return err
	}
	if err := l.checkDriver(o, d); err != nil {
		return err
	}

	if err := o.Deliver(at, payment); err != nil {
		return err
	}
	d.CompleteDelivery(o.BoxCount())
	return nil
}

// NeedsDriverToCancel reports whether Cancel will change the driver, so the caller knows to lock it.
func (l OrderLifecycle) NeedsDriverToCancel(o *order.Order) bool {
	return l.cancelPolicy == CancelReleasesReservation && o.HasDriver() && !o.Status().IsTerminal()
}

// Cancel abandons the order. d may be nil unless NeedsDriverToCancel is true.
func (l OrderLifecycle) Cancel(o *order.Order, d *driver.Driver, at time.Time) error {
	if _, err := o.Status().Cancel(); err != nil {
		return err
	}

	release := l.NeedsDriverToCancel(o)
	if release {
		if err := l.checkDriver(o, d); err != nil {
			return err
		}
	}

	if err := o.Cancel(at); err != nil {
		return err
	}
	if release {
		d.ReleaseReservation(o.BoxCount())
	}
	return nil
}

// NeedsDriverToRevise reports whether Revise will change the driver's reservation.
func (l OrderLifecycle) NeedsDriverToRevise(o *order.Order, r order.Revision) bool {
	return o.HasDriver() && r.BoxDelta(o.BoxCount()) != 0
}

// Revise edits a prepared order. When the box count of an assigned order changes the driver's
// reservation follows it and must still fit the vehicle. d may be nil unless NeedsDriverToRevise is true.
func (l OrderLifecycle) Revise(o *order.Order, d *driver.Driver, r order.Revision, at time.Time) error {
	if o.Status() != order.Prepared {
		return order.ErrNotPrepared
	}

	adjust := l.NeedsDriverToRevise(o, r)
	delta := r.BoxDelta(o.BoxCount())
	if adjust {
		if err := l.checkDriver(o, d); err != nil {
			return err
		}
		if delta > d.SpareCapacity() {
			return driver.ErrCapacityExceeded
		}
	}

	if err := o.Revise(r, at); err != nil {
		return err
	}
	if adjust {
		return d.AdjustReservation(delta)
	}
	return nil
}

func (OrderLifecycle) checkDriver(o *order.Order, d *driver.Driver) error {
	if d == nil {
		return errs.NewValueIsRequiredError("driver")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if !o.IsAssignedTo(d.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("driver",
			fmt.Errorf("order %s is not assigned to driver %s", o.ID(), d.ID()))
	}
	return nil
}
