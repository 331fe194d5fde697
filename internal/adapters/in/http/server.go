package http

import (
	"log/slog"
	"net/http"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/generated/servers"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the command and query handlers.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}

// CreateOrder handles POST /api/v1/orders. The response carries the driver when the
// immediate assignment succeeded.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.Id != nil {
		id, err := kernel.UUIDFromRaw(*body.Id)
		if err != nil {
			return s.errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
		}
		orderID = id
	}
	customerID, err := kernel.UUIDFromRaw(body.CustomerId)
	if err != nil {
		return s.errorResponse(ctx, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	method, err := order.PaymentMethodFromString(string(body.PaymentMethod))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, body.Value, method, body.BoxCount,
		body.HasBundle)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewGetOrdersQuery(status, deref(params.Page), deref(params.Limit))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	page, err := s.h.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	items := make([]servers.Order, len(page.Orders))
	for i, view := range page.Orders {
		items[i] = toOrder(view)
	}
	return ctx.JSON(http.StatusOK, servers.OrderPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// UpdateOrder handles PUT /api/v1/orders/{orderId}. Only prepared orders can be edited.
func (s *Server) UpdateOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var method *order.PaymentMethod
	if body.PaymentMethod != nil {
		m, err := order.PaymentMethodFromString(string(*body.PaymentMethod))
		if err != nil {
			return s.errorResponse(ctx, err)
		}
		method = &m
	}

	cmd, err := commands.NewUpdateOrderCommand(id, body.Value, method, body.BoxCount, body.HasBundle)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// AssignDriver handles POST /api/v1/orders/{orderId}/assign. Leaving the order unassigned
// is a successful outcome and is reported with its reason.
func (s *Server) AssignDriver(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	cmd, err := commands.NewAssignDriverCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	outcome, err := s.h.AssignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result := servers.AssignmentResult{Assigned: outcome.Assigned}
	if outcome.Assigned {
		driverID := outcome.DriverID.Raw()
		result.DriverId = &driverID
		result.Reason = optional(outcome.Reason.String())
	} else {
		result.SkipReason = optional(string(outcome.SkipReason))
	}
	return ctx.JSON(http.StatusOK, result)
}

func (s *Server) DispatchOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	cmd, err := commands.NewDispatchOrderCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.DispatchOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// CompleteDelivery handles POST /api/v1/orders/{orderId}/deliver. The body is optional;
// when present it records what the driver collected.
func (s *Server) CompleteDelivery(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var body servers.CompleteDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id, body.PaidAmount, deref(body.PaidMethod))
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

func (s *Server) SettleOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := orderIDFrom(orderId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var body servers.SettleOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSettleOrderCommand(id, body.CashierId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.SettleOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.h.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = toDriver(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body servers.CreateDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status string
	if body.Status != nil {
		status = string(*body.Status)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, body.Name, deref(body.Phone), status, body.Neighborhoods)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: driverID.Raw()})
}

func (s *Server) GetDriver(ctx echo.Context, driverId servers.DriverId) error {
	id, err := idFrom("driverId", driverId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithDriver(ctx, id)
}

// UpdateDriver handles PUT /api/v1/drivers/{driverId}. Status may only move between
// available and inactive.
func (s *Server) UpdateDriver(ctx echo.Context, driverId servers.DriverId) error {
	id, err := idFrom("driverId", driverId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var body servers.UpdateDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *string
	if body.Status != nil {
		status = optional(string(*body.Status))
	}

	cmd, err := commands.NewUpdateDriverCommand(id, body.Name, body.Phone, status, body.Neighborhoods)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithDriver(ctx, id)
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context, params servers.ListCustomersParams) error {
	query, err := queries.NewGetCustomersQuery(deref(params.Search), deref(params.Page), deref(params.Limit))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	page, err := s.h.GetCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	items := make([]servers.Customer, len(page.Customers))
	for i, view := range page.Customers {
		items[i] = toCustomer(view)
	}
	return ctx.JSON(http.StatusOK, servers.CustomerPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

func (s *Server) GetCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	id, err := idFrom("customerId", customerId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithCustomer(ctx, id)
}

// UpdateCustomer handles PUT /api/v1/customers/{customerId}.
func (s *Server) UpdateCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	id, err := idFrom("customerId", customerId)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var body servers.UpdateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, body.Name, body.Phone, body.Address, body.Neighborhood)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.respondWithCustomer(ctx, id)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body servers.RegisterCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, body.Name, deref(body.Phone), body.Address,
		body.Neighborhood)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: customerID.Raw()})
}

func (s *Server) GetNeighborhoods(ctx echo.Context) error {
	names, err := s.h.GetNeighborhoods.Handle(ctx.Request().Context(), queries.NewGetNeighborhoodsQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if names == nil {
		names = []string{}
	}
	return ctx.JSON(http.StatusOK, names)
}

func (s *Server) AddNeighborhood(ctx echo.Context) error {
	var body servers.AddNeighborhoodJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddNeighborhoodCommand(body.Name)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if err := s.h.AddNeighborhood.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(status, toOrder(view))
}

func (s *Server) respondWithDriver(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetDriverQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	view, err := s.h.GetDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDriver(view))
}

func (s *Server) respondWithCustomer(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	view, err := s.h.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomer(view))
}

func orderIDFrom(raw servers.OrderId) (kernel.UUID, error) {
	return idFrom("orderId", raw)
}

func idFrom(param string, raw openapi_types.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromRaw(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}
