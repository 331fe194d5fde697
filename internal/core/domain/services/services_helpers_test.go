package services_test

import (
	"fmt"
	"testing"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	centro   = kernel.MustNewNeighborhood("Centro")
	jardim   = kernel.MustNewNeighborhood("Jardim")
	baseTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
)

func driverID(t *testing.T, n int) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
	require.NoError(t, err)
	return id
}

type driverSpec struct {
	id     int
	status driver.Status
	load   int
	count  int
	last   *time.Time
	areas  []kernel.Neighborhood
}

func newDriver(t *testing.T, s driverSpec) *driver.Driver {
	t.Helper()
	if s.status == driver.Unknown {
		s.status = driver.Available
	}
	if s.areas == nil {
		s.areas = []kernel.Neighborhood{centro}
	}
	if s.count == 0 && s.load > 0 {
		s.count = 1
	}
	d, err := driver.RestoreDriver(driverID(t, s.id), fmt.Sprintf("driver-%d", s.id), "", s.status, s.areas,
		s.load, s.count, s.last, 1)
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T, boxes int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(50), order.PaidUpfront, boxes,
		false, baseTime)
	require.NoError(t, err)
	return o
}

func at(minutes int) *time.Time {
	ts := baseTime.Add(time.Duration(minutes) * time.Minute)
	return &ts
}
