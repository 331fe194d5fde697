package services_test

import (
	"testing"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assigned returns an order reserved on a fresh driver through the dispatcher.
func assigned(t *testing.T, boxes int) (*order.Order, *driver.Driver) {
	t.Helper()
	o := newOrder(t, boxes)
	d := newDriver(t, driverSpec{id: 1})
	require.NoError(t, services.NewOrderDispatcher().Assign(o, d, centro, order.ReasonSingleCandidate, baseTime))
	return o, d
}

func TestOrderLifecycle_Dispatch(t *testing.T) {
	lifecycle := services.NewOrderLifecycle(services.CancelKeepsReservation)

	t.Run("order and driver leave together", func(t *testing.T) {
		o, d := assigned(t, 4)

		require.NoError(t, lifecycle.Dispatch(o, d, baseTime.Add(time.Hour)))

		assert.Equal(t, order.Dispatched, o.Status())
		assert.Equal(t, driver.EnRoute, d.Status())
	})

	t.Run("unassigned order", func(t *testing.T) {
		o := newOrder(t, 4)

		err := lifecycle.Dispatch(o, nil, baseTime)

		require.ErrorIs(t, err, order.ErrNoDriverAssigned)
		assert.Equal(t, order.Prepared, o.Status())
	})

	t.Run("wrong driver is rejected before any change", func(t *testing.T) {
		o, _ := assigned(t, 4)
		other := newDriver(t, driverSpec{id: 2, load: 1})

		err := lifecycle.Dispatch(o, other, baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Prepared, o.Status())
		assert.Equal(t, driver.Available, other.Status())
	})

	t.Run("cancelled order is not prepared", func(t *testing.T) {
		o, d := assigned(t, 4)
		require.NoError(t, lifecycle.Cancel(o, d, baseTime))

		require.ErrorIs(t, lifecycle.Dispatch(o, d, baseTime), order.ErrNotPrepared)
		assert.Equal(t, driver.Available, d.Status())
	})
}

func TestOrderLifecycle_Deliver(t *testing.T) {
	lifecycle := services.NewOrderLifecycle(services.CancelKeepsReservation)

	t.Run("last order frees the driver", func(t *testing.T) {
		o, d := assigned(t, 4)
		require.NoError(t, lifecycle.Dispatch(o, d, baseTime))

		require.NoError(t, lifecycle.Deliver(o, d, baseTime.Add(time.Hour), nil))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, driver.Available, d.Status())
		assert.Equal(t, 0, d.CurrentLoadBoxes())
		assert.Equal(t, 0, d.CurrentOrderCount())
	})

	t.Run("other reserved orders keep the driver en-route", func(t *testing.T) {
		o, d := assigned(t, 4)
		for range 2 {
			require.NoError(t, services.NewOrderDispatcher().Assign(newOrder(t, 3), d, centro,
				order.ReasonSingleCandidate, baseTime))
		}
		require.NoError(t, lifecycle.Dispatch(o, d, baseTime))
		require.Equal(t, 3, d.CurrentOrderCount())

		require.NoError(t, lifecycle.Deliver(o, d, baseTime, nil))

		assert.Equal(t, driver.EnRoute, d.Status())
		assert.Equal(t, 2, d.CurrentOrderCount())
		assert.Equal(t, 6, d.CurrentLoadBoxes())
	})

	t.Run("prepared order is not dispatched and nothing changes", func(t *testing.T) {
		o, d := assigned(t, 4)

		err := lifecycle.Deliver(o, d, baseTime, nil)

		require.ErrorIs(t, err, order.ErrNotDispatched)
		assert.Equal(t, order.Prepared, o.Status())
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, 4, d.CurrentLoadBoxes())
		assert.Equal(t, 1, d.CurrentOrderCount())
	})
}

func TestOrderLifecycle_Cancel(t *testing.T) {
	t.Run("keep policy leaves driver counters alone", func(t *testing.T) {
		lifecycle := services.NewOrderLifecycle(services.CancelKeepsReservation)
		o, d := assigned(t, 4)

		require.False(t, lifecycle.NeedsDriverToCancel(o))
		require.NoError(t, lifecycle.Cancel(o, nil, baseTime))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.True(t, o.IsAssignedTo(d.ID()))
		assert.Equal(t, 4, d.CurrentLoadBoxes())
		assert.Equal(t, 1, d.CurrentOrderCount())
	})

	t.Run("release policy returns the reservation", func(t *testing.T) {
		lifecycle := services.NewOrderLifecycle(services.CancelReleasesReservation)
		o, d := assigned(t, 4)

		require.True(t, lifecycle.NeedsDriverToCancel(o))
		require.NoError(t, lifecycle.Cancel(o, d, baseTime))

		assert.Equal(t, 0, d.CurrentLoadBoxes())
		assert.Equal(t, 0, d.CurrentOrderCount())
	})

	t.Run("release policy frees an en-route driver whose only order is cancelled", func(t *testing.T) {
		lifecycle := services.NewOrderLifecycle(services.CancelReleasesReservation)
		o, d := assigned(t, 4)
		require.NoError(t, lifecycle.Dispatch(o, d, baseTime))

		require.NoError(t, lifecycle.Cancel(o, d, baseTime))

		assert.Equal(t, driver.Available, d.Status())
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		lifecycle := services.NewOrderLifecycle(services.CancelReleasesReservation)
		o, d := assigned(t, 4)
		require.NoError(t, lifecycle.Cancel(o, d, baseTime))

		err := lifecycle.Cancel(o, d, baseTime.Add(time.Minute))

		require.ErrorIs(t, err, order.ErrAlreadyCancelled)
		assert.Equal(t, 0, d.CurrentOrderCount())
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		lifecycle := services.NewOrderLifecycle(services.CancelKeepsReservation)
		o, d := assigned(t, 4)
		require.NoError(t, lifecycle.Dispatch(o, d, baseTime))
		require.NoError(t, lifecycle.Deliver(o, d, baseTime, nil))

		require.ErrorIs(t, lifecycle.Cancel(o, nil, baseTime), order.ErrAlreadyDelivered)
	})
}

func TestParseCancelPolicy(t *testing.T) {
	p, err := services.ParseCancelPolicy("")
	require.NoError(t, err)
	assert.Equal(t, services.CancelKeepsReservation, p)

	p, err = services.ParseCancelPolicy("release")
	require.NoError(t, err)
	assert.Equal(t, "release", p.String())

	_, err = services.ParseCancelPolicy("refund")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderLifecycle_Revise(t *testing.T) {
	lifecycle := services.NewOrderLifecycle(services.CancelKeepsReservation)
	boxes := func(n int) *int { return &n }

	t.Run("unassigned order needs no driver", func(t *testing.T) {
		o := newOrder(t, 4)
		r := order.Revision{BoxCount: boxes(9)}

		require.False(t, lifecycle.NeedsDriverToRevise(o, r))
		require.NoError(t, lifecycle.Revise(o, nil, r, baseTime))
		assert.Equal(t, 9, o.BoxCount())
	})

	t.Run("growth within capacity moves the reservation", func(t *testing.T) {
		o, d := assigned(t, 4)
		r := order.Revision{BoxCount: boxes(10)}

		require.True(t, lifecycle.NeedsDriverToRevise(o, r))
		require.NoError(t, lifecycle.Revise(o, d, r, baseTime))

		assert.Equal(t, 10, o.BoxCount())
		assert.Equal(t, 10, d.CurrentLoadBoxes())
		assert.Equal(t, 1, d.CurrentOrderCount())
	})

	t.Run("shrinking frees boxes on the driver", func(t *testing.T) {
		o, d := assigned(t, 8)

		require.NoError(t, lifecycle.Revise(o, d, order.Revision{BoxCount: boxes(3)}, baseTime))

		assert.Equal(t, 3, d.CurrentLoadBoxes())
	})

	t.Run("growth beyond capacity changes nothing", func(t *testing.T) {
		o, d := assigned(t, 15)

		err := lifecycle.Revise(o, d, order.Revision{BoxCount: boxes(21)}, baseTime)

		require.ErrorIs(t, err, driver.ErrCapacityExceeded)
		assert.Equal(t, 15, o.BoxCount())
		assert.Equal(t, 15, d.CurrentLoadBoxes())
		assert.Len(t, o.DomainEvents(), 1)
	})

	t.Run("assigned order keeps its driver untouched for other fields", func(t *testing.T) {
		o, _ := assigned(t, 4)
		bundle := true
		r := order.Revision{HasBundle: &bundle, BoxCount: boxes(4)}

		require.False(t, lifecycle.NeedsDriverToRevise(o, r))
		require.NoError(t, lifecycle.Revise(o, nil, r, baseTime))
		assert.True(t, o.HasBundle())
	})

	t.Run("wrong driver is rejected", func(t *testing.T) {
		o, _ := assigned(t, 4)
		other := newDriver(t, driverSpec{id: 2})

		err := lifecycle.Revise(o, other, order.Revision{BoxCount: boxes(6)}, baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 4, o.BoxCount())
	})

	t.Run("dispatched order cannot be edited", func(t *testing.T) {
		o, d := assigned(t, 4)
		require.NoError(t, lifecycle.Dispatch(o, d, baseTime))

		err := lifecycle.Revise(o, d, order.Revision{BoxCount: boxes(2)}, baseTime)

		require.ErrorIs(t, err, order.ErrNotPrepared)
		assert.Equal(t, 4, d.CurrentLoadBoxes())
	})
}
