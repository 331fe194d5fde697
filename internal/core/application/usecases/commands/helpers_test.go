package commands_test

import (
	"fmt"
	"testing"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	centro     = kernel.MustNewNeighborhood("Centro")
	baseTime   = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	fixedClock = kernel.ClockFunc(func() time.Time { return baseTime })
	noDelay    = commands.RetryPolicy{MaxAttempts: 3}
)

// openUoW returns a unit of work whose Begin and Rollback always succeed. Commit is left to the test.
func openUoW(orders *MockOrderRepository, drivers *MockDriverRepository) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	if orders != nil {
		uow.On("OrderRepository").Return(orders).Maybe()
	}
	if drivers != nil {
		uow.On("DriverRepository").Return(drivers).Maybe()
	}
	return uow
}

func factoryFor(uow *MockUoW) *MockUoWFactory {
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}

func fixedID(t *testing.T, n int) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
	require.NoError(t, err)
	return id
}

func restoreDriver(t *testing.T, n int, status driver.Status, load, count int, last *time.Time) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(fixedID(t, n), fmt.Sprintf("driver-%d", n), "", status,
		[]kernel.Neighborhood{centro}, load, count, last, 1)
	require.NoError(t, err)
	return d
}

func preparedOrder(t *testing.T, boxes int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(75), order.PaidOnDelivery,
		boxes, false, baseTime.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, boxes int, d *driver.Driver) *order.Order {
	t.Helper()
	o := preparedOrder(t, boxes)
	require.NoError(t, o.Assign(d.ID(), order.ReasonSingleCandidate, baseTime.Add(-30*time.Minute)))
	return o
}

func dispatchedOrder(t *testing.T, boxes int, d *driver.Driver) *order.Order {
	t.Helper()
	o := assignedOrder(t, boxes, d)
	require.NoError(t, o.Dispatch(baseTime.Add(-10*time.Minute)))
	return o
}
