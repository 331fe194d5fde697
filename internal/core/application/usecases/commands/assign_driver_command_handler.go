package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
)

// SkipReason says why an order was left without a driver. A skip is a normal outcome, not an error.
type SkipReason string

const (
	SkipCustomerWithoutNeighborhood SkipReason = "customer-without-neighborhood"
	SkipNoAvailableDriver           SkipReason = "no-available-driver"
	SkipNoDriverWithCapacity        SkipReason = "no-driver-with-capacity"
)

// AssignmentOutcome is what a single assignment attempt achieved.
type AssignmentOutcome struct {
	Assigned   bool
	DriverID   kernel.UUID
	Reason     order.AssignmentReason
	SkipReason SkipReason
}

func skipped(reason SkipReason) AssignmentOutcome {
	return AssignmentOutcome{SkipReason: reason}
}

// DriverAssigner is the assignment entry point other handlers and jobs depend on.
type DriverAssigner interface {
	Handle(ctx context.Context, cmd AssignDriverCommand) (AssignmentOutcome, error)
}

// AssignDriverCommandHandler matches one prepared order with the best available driver.
//
// The neighborhood comes from the customer directory. Candidates are read without locks, filtered
// by capacity and ranked; the winner is then locked together with the order and re-checked. When
// the winner lost its capacity or availability meanwhile the transaction is a conflict and the
// attempt restarts from candidate lookup.
//
// Example:
//
//	outcome, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    return err
//	case !outcome.Assigned:
//	    log.Printf("order stays unassigned: %s", outcome.SkipReason)
//	default:
//	    log.Printf("driver %s assigned (%s)", outcome.DriverID, outcome.Reason)
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	directory  ports.CustomerDirectory
	dispatcher services.OrderDispatcher
	retry      RetryPolicy
	clock      kernel.Clock
}

func NewAssignDriverCommandHandler(
	uowFactory UoWFactory,
	directory ports.CustomerDirectory,
	retry RetryPolicy,
	clock kernel.Clock,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		dispatcher: services.NewOrderDispatcher(),
		retry:      retry,
		clock:      clock,
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (AssignmentOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentOutcome{}, err
	}

	pending, err := h.loadAssignable(ctx, cmd.OrderID())
	if err != nil {
		return AssignmentOutcome{}, err
	}

	n, ok, err := h.directory.GetNeighborhood(ctx, pending.CustomerID())
	if err != nil {
		return AssignmentOutcome{}, err
	}
	if !ok || n.IsEmpty() {
		return skipped(SkipCustomerWithoutNeighborhood), nil
	}

	var outcome AssignmentOutcome
	err = retryOnConflict(ctx, h.retry, func(ctx context.Context) error {
		var attemptErr error
		outcome, attemptErr = h.attempt(ctx, cmd.OrderID(), n, pending.BoxCount())
		return attemptErr
	})
	if err != nil {
		return AssignmentOutcome{}, err
	}

	return outcome, nil
}

// loadAssignable reads the order outside any transaction to learn its customer and box count.
func (h AssignDriverCommandHandler) loadAssignable(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = o.Status().ValidateAssign(); err != nil {
		return nil, err
	}
	if o.HasDriver() {
		return nil, order.ErrAlreadyAssigned
	}
	return o, nil
}

func (h AssignDriverCommandHandler) attempt(
	ctx context.Context,
	orderID kernel.UUID,
	n kernel.Neighborhood,
	boxLoad int,
) (AssignmentOutcome, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	candidates, err := driverRepo.FindAvailableForNeighborhood(ctx, n)
	if err != nil {
		return AssignmentOutcome{}, err
	}

	selection, err := h.dispatcher.Select(n, boxLoad, candidates)
	switch {
	case errors.Is(err, services.ErrNoAvailableDriver):
		return skipped(SkipNoAvailableDriver), nil
	case errors.Is(err, services.ErrNoDriverWithCapacity):
		return skipped(SkipNoDriverWithCapacity), nil
	case err != nil:
		return AssignmentOutcome{}, err
	}

	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return AssignmentOutcome{}, err
	}
	d, err := driverRepo.GetForUpdate(ctx, selection.Driver.ID())
	if err != nil {
		return AssignmentOutcome{}, err
	}

	if err = h.dispatcher.Assign(o, d, n, selection.Reason, h.clock.Now()); err != nil {
		return AssignmentOutcome{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AssignmentOutcome{}, err
	}
	if err = driverRepo.Update(ctx, d); err != nil {
		return AssignmentOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentOutcome{}, err
	}

	return AssignmentOutcome{Assigned: true, DriverID: d.ID(), Reason: selection.Reason}, nil
}
