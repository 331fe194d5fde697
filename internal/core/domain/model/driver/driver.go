package driver

import (
	"errors"
	"strings"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// MaxCapacityBoxes is the number of boxes any vehicle can carry at once.
const MaxCapacityBoxes = 20

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrNeighborhoodsAreRequired = errs.NewValueIsRequiredError("coveredNeighborhoods")
	ErrDriverIsNotConstructed   = errors.New("Driver must be created via NewDriver or RestoreDriver")

	ErrCapacityExceeded   = errs.NewBusinessRuleError("driver-capacity-exceeded", "driver has no spare capacity")
	ErrNoOrdersInProgress = errs.NewBusinessRuleError("driver-no-orders", "driver has no reserved orders")
	ErrDriverIsEnRoute    = errs.NewBusinessRuleError("driver-en-route", "driver is out delivering")
	ErrHasReservedOrders  = errs.NewBusinessRuleError("driver-reserved", "driver still holds reserved orders")
)

type Driver struct {
	id                   kernel.UUID
	name                 string
	phone                string
	status               Status
	coveredNeighborhoods []kernel.Neighborhood

	currentLoadBoxes  int
	currentOrderCount int
	lastAssignmentAt  *time.Time

	version int64
	guard   guard.ConstructorGuard
}

// NewDriver registers an empty driver. New drivers are usually available but may be created inactive.
func NewDriver(
	id kernel.UUID,
	name string,
	phone string,
	status Status,
	coveredNeighborhoods []kernel.Neighborhood,
) (*Driver, error) {
	d := &Driver{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if status == EnRoute {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("a new driver has no orders and cannot be en-route"))
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setStatus(status),
		d.setCoveredNeighborhoods(coveredNeighborhoods),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver loaded from storage.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	status Status,
	coveredNeighborhoods []kernel.Neighborhood,
	currentLoadBoxes int,
	currentOrderCount int,
	lastAssignmentAt *time.Time,
	version int64,
) (*Driver, error) {
	d := &Driver{
		phone:            phone,
		lastAssignmentAt: lastAssignmentAt,
		version:          version,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setStatus(status),
		d.setCoveredNeighborhoods(coveredNeighborhoods),
		d.setCounters(currentLoadBoxes, currentOrderCount),
	); err != nil {
		return nil, err
	}
	if status == EnRoute && currentOrderCount < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", errors.New("en-route driver must have an order"))
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Phone() string {
	return d.phone
}

func (d *Driver) Status() Status {
	return d.status
}

// CoveredNeighborhoods returns a copy of the service area.
func (d *Driver) CoveredNeighborhoods() []kernel.Neighborhood {
	return append([]kernel.Neighborhood(nil), d.coveredNeighborhoods...)
}

func (d *Driver) CurrentLoadBoxes() int {
	return d.currentLoadBoxes
}

func (d *Driver) CurrentOrderCount() int {
	return d.currentOrderCount
}

func (d *Driver) LastAssignmentAt() *time.Time {
	return d.lastAssignmentAt
}

func (d *Driver) Version() int64 {
	return d.version
}

func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

func (d *Driver) Covers(n kernel.Neighborhood) bool {
	for _, covered := range d.coveredNeighborhoods {
		if covered.Equals(n) {
			return true
		}
	}
	return false
}

func (d *Driver) SpareCapacity() int {
	return MaxCapacityBoxes - d.currentLoadBoxes
}

// CanCarry reports whether boxes more boxes fit without exceeding MaxCapacityBoxes.
func (d *Driver) CanCarry(boxes int) bool {
	return boxes >= 0 && d.currentLoadBoxes+boxes <= MaxCapacityBoxes
}

// Reserve books capacity for a newly assigned order. The status does not change.
func (d *Driver) Reserve(boxes int, at time.Time) error {
	if boxes < 0 {
		return errs.NewValueIsOutOfRangeError("boxes", boxes, 0, MaxCapacityBoxes)
	}
	if !d.CanCarry(boxes) {
		return ErrCapacityExceeded
	}

	d.currentLoadBoxes += boxes
	d.currentOrderCount++
	d.lastAssignmentAt = &at
	return nil
}

// StartRoute marks the driver as out delivering.
func (d *Driver) StartRoute() error {
	if d.currentOrderCount < 1 {
		return ErrNoOrdersInProgress
	}
	d.status = EnRoute
	return nil
}

// CompleteDelivery frees the capacity of a delivered order. The last delivery makes an active
// driver available again.
func (d *Driver) CompleteDelivery(boxes int) {
	d.release(boxes)
}

// ReleaseReservation gives back the capacity of a cancelled order.
func (d *Driver) ReleaseReservation(boxes int) {
	d.release(boxes)
}

func (d *Driver) release(boxes int) {
	d.currentLoadBoxes = max(d.currentLoadBoxes-boxes, 0)
	d.currentOrderCount = max(d.currentOrderCount-1, 0)
	if d.currentOrderCount == 0 && d.status != Inactive {
		d.status = Available
	}
}

func (d *Driver) Rename(name string) error {
	return d.setName(name)
}

func (d *Driver) ChangePhone(phone string) {
	d.phone = strings.TrimSpace(phone)
}

// ChangeCoveredNeighborhoods replaces the service area. Orders already reserved are not affected.
func (d *Driver) ChangeCoveredNeighborhoods(neighborhoods []kernel.Neighborhood) error {
	return d.setCoveredNeighborhoods(neighborhoods)
}

// ChangeStatus takes the driver in or out of service. Only available and inactive may be requested;
// en-route is entered by dispatching an order and left by delivering it. A driver holding reserved
// orders cannot be taken out of service.
func (d *Driver) ChangeStatus(status Status) error {
	if status == EnRoute {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("en-route is entered by dispatching an order"))
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if status == d.status {
		return nil
	}
	if d.status == EnRoute {
		return ErrDriverIsEnRoute
	}
	if status == Inactive && d.currentOrderCount > 0 {
		return ErrHasReservedOrders
	}

	d.status = status
	return nil
}

// AdjustReservation follows a change in the size of an order the driver already holds.
// Growing past MaxCapacityBoxes fails with ErrCapacityExceeded and changes nothing.
func (d *Driver) AdjustReservation(deltaBoxes int) error {
	if deltaBoxes > 0 && !d.CanCarry(deltaBoxes) {
		return ErrCapacityExceeded
	}
	d.currentLoadBoxes = max(d.currentLoadBoxes+deltaBoxes, 0)
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setCoveredNeighborhoods(neighborhoods []kernel.Neighborhood) error {
	if len(neighborhoods) == 0 {
		return ErrNeighborhoodsAreRequired
	}
	unique := make([]kernel.Neighborhood, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		if err := n.Validate(); err != nil {
			return err
		}
		duplicate := false
		for _, u := range unique {
			if u.Equals(n) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, n)
		}
	}
	d.coveredNeighborhoods = unique
	return nil
}

func (d *Driver) setCounters(load, count int) error {
	if load < 0 || load > MaxCapacityBoxes {
		return errs.NewValueIsOutOfRangeError("currentLoadBoxes", load, 0, MaxCapacityBoxes)
	}
	if count < 0 {
		return errs.NewValueIsOutOfRangeError("currentOrderCount", count, 0, "unbounded")
	}
	d.currentLoadBoxes = load
	d.currentOrderCount = count
	return nil
}
