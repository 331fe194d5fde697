package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	pgadapter "fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/postgres/pgtest"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

var (
	centro   = kernel.MustNewNeighborhood("Centro")
	baseTime = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockEventPublisher
	factory   *pgadapter.GormUnitOfWorkFactory
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.Require().NoError(pgadapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.publisher = new(MockEventPublisher)
	suite.factory = pgadapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, slog.New(slog.DiscardHandler))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(20), order.PaidUpfront, 3, false,
		baseTime)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newDriver() *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), "Caio", "", driver.Available, []kernel.Neighborhood{centro})
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin joins the open transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesOrderAndDriverTogetherAndPublishes() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	d := suite.newDriver()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, o))
	suite.Require().NoError(seed.DriverRepository().Add(ctx, d))
	suite.Require().NoError(seed.Commit(ctx))

	var published []order.Event
	suite.publisher.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(1).([]order.Event) }).
		Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	lockedOrder, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	lockedDriver, err := uow.DriverRepository().GetForUpdate(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(lockedDriver.Reserve(lockedOrder.BoxCount(), baseTime))
	suite.Require().NoError(lockedOrder.Assign(lockedDriver.ID(), order.ReasonSingleCandidate, baseTime))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, lockedOrder))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, lockedDriver))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Len(published, 1)
	suite.Equal(order.EventAssigned, published[0].Name)
	suite.True(published[0].OrderID.IsEqual(o.ID()))
	suite.Empty(lockedOrder.DomainEvents())

	reader := suite.factory.Create()
	stored, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsAssignedTo(d.ID()))
	suite.Equal(int64(2), stored.Version())
	storedDriver, err := reader.DriverRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(3, storedDriver.CurrentLoadBoxes())
	suite.Equal(1, storedDriver.CurrentOrderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWritesAndEvents() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(o.Cancel(baseTime))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishFailureDoesNotFailCommit() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(o.Cancel(baseTime))
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, stored.Status())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdate_StaleCopyIsConflict() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	first, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Cancel(baseTime))
	suite.Require().NoError(suite.factory.Create().OrderRepository().Update(ctx, first))

	suite.Require().NoError(second.Assign(kernel.NewUUID(), order.ReasonSingleCandidate, baseTime))
	err = suite.factory.Create().OrderRepository().Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}
