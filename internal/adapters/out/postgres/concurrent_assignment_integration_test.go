package postgres_test

import (
	"context"
	"log/slog"
	"sync"
	"time"

	pgadapter "fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/postgres/customerrepo"
	"fleet/internal/adapters/out/postgres/neighborhoodrepo"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/customer"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Two orders of 15 boxes race for one empty driver: the second must see the first reservation.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCreateOrder_ReservesCapacityOnce() {
	ctx := suite.T().Context()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	suite.Require().NoError(neighborhoodrepo.NewGormNeighborhoodRegistry(suite.db).Add(ctx, centro))
	c, err := customer.NewCustomer(kernel.NewUUID(), "Bia", "", "Rua A, 10", centro)
	suite.Require().NoError(err)
	suite.Require().NoError(customerrepo.NewGormCustomerRepository(suite.db).Add(ctx, c))
	d := suite.newDriver()
	suite.Require().NoError(suite.factory.Create().DriverRepository().Add(ctx, d))

	retry := commands.RetryPolicy{MaxAttempts: 5, BaseDelay: 5 * time.Millisecond, MaxDelay: 20 * time.Millisecond}
	assigner := commands.NewAssignDriverCommandHandler(
		uowFactory{suite.factory},
		customerrepo.NewGormCustomerDirectory(suite.db),
		retry,
		kernel.SystemClock,
	)
	creator := commands.NewCreateOrderCommandHandler(
		orderUoWFactory{suite.factory},
		assigner,
		kernel.SystemClock,
		slog.New(slog.DiscardHandler),
	)

	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	var wg sync.WaitGroup
	errCh := make(chan error, len(ids))
	for _, id := range ids {
		cmd, err := commands.NewCreateOrderCommand(id, c.ID(), decimal.NewFromInt(90), order.PaidOnDelivery, 15, false)
		suite.Require().NoError(err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- creator.Handle(context.Background(), cmd)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	reader := suite.factory.Create()
	assigned := 0
	for _, id := range ids {
		o, err := reader.OrderRepository().Get(ctx, id)
		suite.Require().NoError(err)
		suite.Equal(order.Prepared, o.Status())
		if o.HasDriver() {
			assigned++
			suite.True(o.IsAssignedTo(d.ID()))
		}
	}
	suite.Equal(1, assigned)

	stored, err := reader.DriverRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(15, stored.CurrentLoadBoxes())
	suite.Equal(1, stored.CurrentOrderCount())
}

type uowFactory struct {
	f *pgadapter.GormUnitOfWorkFactory
}

func (a uowFactory) Create() commands.UoW { return a.f.Create() }

type orderUoWFactory struct {
	f *pgadapter.GormUnitOfWorkFactory
}

func (a orderUoWFactory) Create() commands.OrderUoW { return a.f.Create() }
