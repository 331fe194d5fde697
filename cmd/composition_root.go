package cmd

import (
	"log/slog"

	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/postgres/customerrepo"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
	"fleet/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	lifecycle  services.OrderLifecycle
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	policy, err := services.ParseCancelPolicy(configs.CancelPolicy)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		lifecycle:  services.NewOrderLifecycle(policy),
		clock:      kernel.SystemClock,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoW() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) registryUoW() commands.RegistryUoWFactory {
	return FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(
		c.uow(),
		customerrepo.NewGormCustomerDirectory(c.gormDB),
		c.configs.RetryPolicy(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoW(), c.CreateAssignDriverCommandHandler(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.uow(), c.lifecycle, c.configs.RetryPolicy(), c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.uow(), c.lifecycle, c.configs.RetryPolicy(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow(), c.lifecycle, c.configs.RetryPolicy(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uow(), c.lifecycle, c.configs.RetryPolicy(), c.clock)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	return commands.NewSettleOrderCommandHandler(c.orderUoW(), c.configs.RetryPolicy(), c.clock)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoW())
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.driverUoW(), c.configs.RetryPolicy())
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.registryUoW())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.registryUoW())
}

func (c *CompositionRoot) CreateAddNeighborhoodCommandHandler() commands.AddNeighborhoodCommandHandler {
	return commands.NewAddNeighborhoodCommandHandler(c.registryUoW())
}

func (c *CompositionRoot) CreateAssignPendingOrdersCommandHandler() commands.AssignPendingOrdersCommandHandler {
	return commands.NewAssignPendingOrdersCommandHandler(c.orderUoW(), c.CreateAssignDriverCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNeighborhoodsQueryHandler() queries.GetNeighborhoodsQueryHandler {
	return queries.NewGetNeighborhoodsQueryHandler(c.gormDB)
}

// CreateRouter wires every handler into the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		AssignDriver:     c.CreateAssignDriverCommandHandler(),
		DispatchOrder:    c.CreateDispatchOrderCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),
		UpdateOrder:      c.CreateUpdateOrderCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		SettleOrder:      c.CreateSettleOrderCommandHandler(),
		CreateDriver:     c.CreateCreateDriverCommandHandler(),
		UpdateDriver:     c.CreateUpdateDriverCommandHandler(),
		RegisterCustomer: c.CreateRegisterCustomerCommandHandler(),
		UpdateCustomer:   c.CreateUpdateCustomerCommandHandler(),
		AddNeighborhood:  c.CreateAddNeighborhoodCommandHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetAllDrivers:    c.CreateGetAllDriversQueryHandler(),
		GetDriver:        c.CreateGetDriverQueryHandler(),
		GetCustomers:     c.CreateGetCustomersQueryHandler(),
		GetCustomer:      c.CreateGetCustomerQueryHandler(),
		GetNeighborhoods: c.CreateGetNeighborhoodsQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignPendingOrdersCommandHandler(), jobs.Config{
		AssignmentSchedule:  c.configs.AssignmentRetrySchedule,
		AssignmentBatchSize: c.configs.AssignmentBatchSize,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
