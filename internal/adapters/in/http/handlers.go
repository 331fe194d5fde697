package http

import (
	"context"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
)

type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers are the use cases the API exposes.
type Handlers struct {
	CreateOrder      CommandHandler[commands.CreateOrderCommand]
	AssignDriver     commands.DriverAssigner
	DispatchOrder    CommandHandler[commands.DispatchOrderCommand]
	CompleteDelivery CommandHandler[commands.CompleteDeliveryCommand]
	UpdateOrder      CommandHandler[commands.UpdateOrderCommand]
	CancelOrder      CommandHandler[commands.CancelOrderCommand]
	SettleOrder      CommandHandler[commands.SettleOrderCommand]
	CreateDriver     CommandHandler[commands.CreateDriverCommand]
	UpdateDriver     CommandHandler[commands.UpdateDriverCommand]
	RegisterCustomer CommandHandler[commands.RegisterCustomerCommand]
	UpdateCustomer   CommandHandler[commands.UpdateCustomerCommand]
	AddNeighborhood  CommandHandler[commands.AddNeighborhoodCommand]

	GetOrders        QueryHandler[queries.GetOrdersQuery, queries.GetOrdersQueryResponse]
	GetOrder         QueryHandler[queries.GetOrderQuery, queries.OrderView]
	GetAllDrivers    QueryHandler[queries.GetAllDriversQuery, []queries.DriverView]
	GetDriver        QueryHandler[queries.GetDriverQuery, queries.DriverView]
	GetCustomers     QueryHandler[queries.GetCustomersQuery, queries.GetCustomersQueryResponse]
	GetCustomer      QueryHandler[queries.GetCustomerQuery, queries.CustomerView]
	GetNeighborhoods QueryHandler[queries.GetNeighborhoodsQuery, []string]
}
