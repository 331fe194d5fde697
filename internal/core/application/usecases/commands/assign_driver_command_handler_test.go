package commands_test

import (
	"errors"
	"testing"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignCommand(t *testing.T, o *order.Order) commands.AssignDriverCommand {
	t.Helper()
	cmd, err := commands.NewAssignDriverCommand(o.ID())
	require.NoError(t, err)
	return cmd
}

func TestAssignDriverCommandHandler_AssignsBestRankedDriver(t *testing.T) {
	ctx := t.Context()
	o := preparedOrder(t, 8)
	earlier := baseTime.Add(-2 * time.Hour)
	full := restoreDriver(t, 1, driver.Available, 15, 2, nil)
	rotated := restoreDriver(t, 2, driver.Available, 4, 1, &earlier)
	fresh := restoreDriver(t, 3, driver.Available, 4, 1, nil)

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	orders.On("Update", mock.Anything, o).Return(nil).Once()

	drivers := new(MockDriverRepository)
	drivers.On("FindAvailableForNeighborhood", mock.Anything, centro).
		Return([]*driver.Driver{full, rotated, fresh}, nil).Once()
	drivers.On("GetForUpdate", mock.Anything, fresh.ID()).Return(fresh, nil).Once()
	drivers.On("Update", mock.Anything, fresh).Return(nil).Once()

	uow := openUoW(orders, drivers)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	directory := new(MockCustomerDirectory)
	directory.On("GetNeighborhood", mock.Anything, o.CustomerID()).Return(centro, true, nil).Once()

	h := commands.NewAssignDriverCommandHandler(factoryFor(uow), directory, noDelay, fixedClock)
	outcome, err := h.Handle(ctx, assignCommand(t, o))

	require.NoError(t, err)
	assert.True(t, outcome.Assigned)
	assert.True(t, outcome.DriverID.IsEqual(fresh.ID()))
	assert.Equal(t, order.ReasonTieBreakLoadThenRotate, outcome.Reason)

	assert.True(t, o.IsAssignedTo(fresh.ID()))
	assert.Equal(t, baseTime, *o.AssignedAt())
	assert.Equal(t, 12, fresh.CurrentLoadBoxes())
	assert.Equal(t, 2, fresh.CurrentOrderCount())
	assert.Equal(t, driver.Available, fresh.Status())
	assert.Equal(t, 15, full.CurrentLoadBoxes())

	orders.AssertExpectations(t)
	drivers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_SingleCandidate(t *testing.T) {
	ctx := t.Context()
	o := preparedOrder(t, 3)
	only := restoreDriver(t, 1, driver.Available, 0, 0, nil)

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
	orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil)
	orders.On("Update", mock.Anything, o).Return(nil)
	drivers := new(MockDriverRepository)
	drivers.On("FindAvailableForNeighborhood", mock.Anything, centro).Return([]*driver.Driver{only}, nil)
	drivers.On("GetForUpdate", mock.Anything, only.ID()).Return(only, nil)
	drivers.On("Update", mock.Anything, only).Return(nil)
	uow := openUoW(orders, drivers)
	uow.On("Commit", mock.Anything).Return(nil)
	directory := new(MockCustomerDirectory)
	directory.On("GetNeighborhood", mock.Anything, o.CustomerID()).Return(centro, true, nil)

	h := commands.NewAssignDriverCommandHandler(factoryFor(uow), directory, noDelay, fixedClock)
	outcome, err := h.Handle(ctx, assignCommand(t, o))

	require.NoError(t, err)
	assert.Equal(t, order.ReasonSingleCandidate, outcome.Reason)
	assert.Equal(t, order.ReasonSingleCandidate, o.AssignmentReason())
}

func TestAssignDriverCommandHandler_Skips(t *testing.T) {
	t.Run("customer without neighborhood", func(t *testing.T) {
		o := preparedOrder(t, 3)
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
		uow := openUoW(orders, nil)
		directory := new(MockCustomerDirectory)
		directory.On("GetNeighborhood", mock.Anything, o.CustomerID()).Return(kernel.Neighborhood{}, false, nil)

		h := commands.NewAssignDriverCommandHandler(factoryFor(uow), directory, noDelay, fixedClock)
		outcome, err := h.Handle(t.Context(), assignCommand(t, o))

		require.NoError(t, err)
		assert.False(t, outcome.Assigned)
		assert.Equal(t, commands.SkipCustomerWithoutNeighborhood, outcome.SkipReason)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("no available driver", func(t *testing.T) {
		o := preparedOrder(t, 3)
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
		drivers := new(MockDriverRepository)
		drivers.On("FindAvailableForNeighborhood", mock.Anything, centro).Return(nil, nil)
		uow := openUoW(orders, drivers)
		directory := new(MockCustomerDirectory)
		directory.On("GetNeighborhood", mock.Anything, o.CustomerID()).Return(centro, true, nil)

		h := commands.NewAssignDriverCommandHandler(factoryFor(uow), directory, noDelay, fixedClock)
		outcome, err := h.Handle(t.Context(), assignCommand(t, o))

		require.NoError(t, err)
		assert.Equal(t, commands.SkipNoAvailableDriver, outcome.SkipReason)
		assert.Nil(t, o.Driver())
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("8 boxes do not fit a driver holding 15", func(t *testing.T) {
		o := preparedOrder(t, 8)
		busy := restoreDriver(t, 1, driver.Available, 15, 3, nil)
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
		drivers := new(MockDriverRepository)
		drivers.On("FindAvailableForNeighborhood", mock.Anything, centro).Return([]*driver.Driver{busy}, nil)
		uow := openUoW(orders, drivers)
		directory := new(MockCustomerDirectory)
		directory.On("GetNeighborhood", mock.Anything, o.CustomerID()).Return(centro, true, nil)

		h := commands.NewAssignDriverCommandHandler(factoryFor(uow), directory, noDelay, fixedClock)
		outcome, err := h.Handle(t.Context(), assignCommand(t, o))

		require.NoError(t, err)
		assert.Equal(t, commands.SkipNoDriverWithCapacity, outcome.SkipReason)
		assert.Equal(t, 15, busy.CurrentLoadBoxes())
		drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAssignDriverCommandHandler_RetriesWhenCapacityWasTaken(t *testing.T) {
	ctx := t.Context()
	o := preparedOrder(t, 8)
	staleView := restoreDriver(t, 1, driver.Available, 0, 0, nil)
	lockedTaken := restoreDriver(t, 1, driver.Available, 15, 1, nil)
	other := restoreDriver(t, 2, driver.Available, 2, 1, nil)

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
	orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Twice()
	orders.On("Update", mock.Anything, o).Return(nil).Once()

	drivers := new(MockDriverRepository)
	drivers.On("FindAvailableForNeighborhood", mock.Anything, centro).
		Return([]*driver.Driver{staleView}, nil).Once()
	drivers.On("GetForUpdate", mock.Anything, staleView.ID()).Return(lockedTaken, nil).Once()
	drivers.On("FindAvailableForNeighborhood", mock.Anything, centro).
		Return([]*driver.Driver{lockedTaken, other}, nil).Once()
	drivers.On("GetForUpdate", mock.Anything, other.ID()).Return(other, nil).Once()
	drivers.On("Update", mock.Anything, other).Return(nil).Once()

	uow := openUoW(orders, drivers)
	uow.On("Commit", mock.Anything).Return(nil).Once()
	directory := new(MockCustomerDirectory)
	directory.On("GetNeighborhood", mock.Anything, o.CustomerID()).Return(centro, true, nil).Once()

	h := commands.NewAssignDriverCommandHandler(factoryFor(uow), directory, noDelay, fixedClock)
	outcome, err := h.Handle(ctx, assignCommand(t, o))

	require.NoError(t, err)
	assert.True(t, outcome.DriverID.IsEqual(other.ID()))
	assert.Equal(t, 15, lockedTaken.CurrentLoadBoxes())
	assert.Equal(t, 10, other.CurrentLoadBoxes())
	drivers.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_ReturnsConflictWhenAttemptsRunOut(t *testing.T) {
	o := preparedOrder(t, 2)
	d := restoreDriver(t, 1, driver.Available, 0, 0, nil)

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
	orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil)
	orders.On("Update", mock.Anything, o).Return(errs.NewConflictError("order"))
	drivers := new(MockDriverRepository)
	drivers.On("FindAvailableForNeighborhood", mock.Anything, centro).Return([]*driver.Driver{d}, nil)
	drivers.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
	uow := openUoW(orders, drivers)
	directory := new(MockCustomerDirectory)
	directory.On("GetNeighborhood", mock.Anything, o.CustomerID()).Return(centro, true, nil)

	h := commands.NewAssignDriverCommandHandler(factoryFor(uow), directory, commands.RetryPolicy{MaxAttempts: 1},
		fixedClock)
	_, err := h.Handle(t.Context(), assignCommand(t, o))

	require.ErrorIs(t, err, errs.ErrConflict)
	orders.AssertNumberOfCalls(t, "Update", 1)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignDriverCommandHandler_Errors(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		id := kernel.NewUUID()
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id))
		uow := openUoW(orders, nil)

		h := commands.NewAssignDriverCommandHandler(factoryFor(uow), new(MockCustomerDirectory), noDelay, fixedClock)
		cmd, err := commands.NewAssignDriverCommand(id)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("already assigned order", func(t *testing.T) {
		o := assignedOrder(t, 2, restoreDriver(t, 1, driver.Available, 2, 1, nil))
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
		uow := openUoW(orders, nil)

		h := commands.NewAssignDriverCommandHandler(factoryFor(uow), new(MockCustomerDirectory), noDelay, fixedClock)
		_, err := h.Handle(t.Context(), assignCommand(t, o))

		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	})

	t.Run("directory unavailable", func(t *testing.T) {
		o := preparedOrder(t, 2)
		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
		uow := openUoW(orders, nil)
		directory := new(MockCustomerDirectory)
		directory.On("GetNeighborhood", mock.Anything, o.CustomerID()).
			Return(kernel.Neighborhood{}, false, errs.NewUpstreamUnavailableError("customers", errors.New("timeout")))

		h := commands.NewAssignDriverCommandHandler(factoryFor(uow), directory, noDelay, fixedClock)
		_, err := h.Handle(t.Context(), assignCommand(t, o))

		require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("command not constructed", func(t *testing.T) {
		h := commands.NewAssignDriverCommandHandler(new(MockUoWFactory), new(MockCustomerDirectory), noDelay, fixedClock)

		_, err := h.Handle(t.Context(), commands.AssignDriverCommand{})

		require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	})
}
