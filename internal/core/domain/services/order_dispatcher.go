package services

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
)

var (
	// ErrNoAvailableDriver means no available driver covers the neighborhood.
	ErrNoAvailableDriver = errors.New("no available driver covers the neighborhood")
	// ErrNoDriverWithCapacity means covering drivers exist but none has room for the boxes.
	ErrNoDriverWithCapacity = errors.New("no covering driver has spare capacity")
)

// Selection is the driver chosen for an order and why.
type Selection struct {
	Driver *driver.Driver
	Reason order.AssignmentReason
}

// OrderDispatcher selects a driver for an order and reserves it.
type OrderDispatcher struct {
	filter DriverFilter
	ranker TieBreakRanker
}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{filter: NewDriverFilter(), ranker: NewTieBreakRanker()}
}

// Select filters candidates by capacity and ranks the rest. It does not mutate anything;
// the choice must be confirmed with Assign against freshly locked aggregates.
func (d OrderDispatcher) Select(n kernel.Neighborhood, boxLoad int, candidates []*driver.Driver) (Selection, error) {
	if len(candidates) == 0 {
		return Selection{}, ErrNoAvailableDriver
	}

	eligible := d.filter.Eligible(n, boxLoad, candidates)
	if len(eligible) == 0 {
		return Selection{}, ErrNoDriverWithCapacity
	}

	ranked, reason := d.ranker.Rank(eligible)
	return Selection{Driver: ranked[0], Reason: reason}, nil
}

// Assign reserves drv for o. Both aggregates must have been re-read inside the committing
// transaction. A driver that stopped being eligible since Select yields an errs.ConflictError
// so that the caller restarts from candidate lookup.
func (d OrderDispatcher) Assign(
	o *order.Order,
	drv *driver.Driver,
	n kernel.Neighborhood,
	reason order.AssignmentReason,
	at time.Time,
) error {
	if err := errors.Join(o.Validate(), drv.Validate()); err != nil {
		return err
	}
	if err := o.Status().ValidateAssign(); err != nil {
		return err
	}
	if o.HasDriver() {
		return order.ErrAlreadyAssigned
	}

	if !drv.IsAvailable() || !drv.Covers(n) {
		return errs.NewConflictError("driver " + drv.ID().String() + " is no longer available")
	}
	if err := drv.Reserve(o.BoxCount(), at); err != nil {
		if errors.Is(err, driver.ErrCapacityExceeded) {
			return errs.NewConflictErrorWithCause("driver "+drv.ID().String(), err)
		}
		return err
	}

	return o.Assign(drv.ID(), reason, at)
}
