// Package http exposes the ordering workflow over a REST API built on
// labstack/echo. Every request carries an X-Principal-ID header that the
// middleware resolves to a full principal before any handler runs; handlers
// then pass the resolved actor into commands and queries, which enforce the
// actual authorization rules.
package http

import (
	"log/slog"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/core/ports"
	"foodorder/internal/notifications"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to the application use cases.
type Server struct {
	directory ports.RoleDirectory
	watchers  *notifications.WatcherRegistry

	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	advanceOrderHandler      commands.AdvanceOrderCommandHandler
	assignRiderHandler       commands.AssignRiderCommandHandler
	acceptPickupHandler      commands.AcceptPickupCommandHandler
	declinePickupHandler     commands.DeclinePickupCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	acknowledgePickupHandler commands.AcknowledgePickupCommandHandler

	// Query handlers
	customerOrdersHandler        queries.GetCustomerOrdersQueryHandler
	restaurantOrdersHandler      queries.GetRestaurantOrdersQueryHandler
	availableRidersHandler       queries.GetAvailableRidersQueryHandler
	unacknowledgedPickupsHandler queries.GetUnacknowledgedPickupsQueryHandler
}

// NewServer creates an HTTP server with the required role directory and
// command and query handlers.
func NewServer(
	directory ports.RoleDirectory,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	acceptPickupHandler commands.AcceptPickupCommandHandler,
	declinePickupHandler commands.DeclinePickupCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	acknowledgePickupHandler commands.AcknowledgePickupCommandHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	restaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	availableRidersHandler queries.GetAvailableRidersQueryHandler,
	unacknowledgedPickupsHandler queries.GetUnacknowledgedPickupsQueryHandler,
) *Server {
	return &Server{
		directory:                    directory,
		placeOrderHandler:            placeOrderHandler,
		advanceOrderHandler:          advanceOrderHandler,
		assignRiderHandler:           assignRiderHandler,
		acceptPickupHandler:          acceptPickupHandler,
		declinePickupHandler:         declinePickupHandler,
		cancelOrderHandler:           cancelOrderHandler,
		acknowledgePickupHandler:     acknowledgePickupHandler,
		customerOrdersHandler:        customerOrdersHandler,
		restaurantOrdersHandler:      restaurantOrdersHandler,
		availableRidersHandler:       availableRidersHandler,
		unacknowledgedPickupsHandler: unacknowledgedPickupsHandler,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", s.resolvePrincipal)

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/assign-rider", s.AssignRider)
	api.POST("/orders/:id/pickup/accept", s.AcceptPickup)
	api.POST("/orders/:id/pickup/decline", s.DeclinePickup)
	api.POST("/orders/:id/pickup/acknowledge", s.AcknowledgePickup)

	api.GET("/orders", s.GetCustomerOrders)
	api.GET("/restaurant/orders", s.GetRestaurantOrders)
	api.GET("/riders/available", s.GetAvailableRiders)
	api.GET("/pickups/unacknowledged", s.GetUnacknowledgedPickups)

	if s.watchers != nil {
		api.POST("/pickups/watch", s.WatchPickups)
		api.DELETE("/pickups/watch", s.UnwatchPickups)
	}
}

// WithWatcherRegistry enables the pickup watch session endpoints.
func (s *Server) WithWatcherRegistry(watchers *notifications.WatcherRegistry) *Server {
	s.watchers = watchers
	return s
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, commands.OrderLine{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, actor(ctx), restaurantID, lines, req.PaymentApproved)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AdvanceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actor(ctx), target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRider handles POST /api/v1/orders/:id/assign-rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, actor(ctx), riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptPickup handles POST /api/v1/orders/:id/pickup/accept.
func (s *Server) AcceptPickup(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAcceptPickupCommand(orderID, actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acceptPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclinePickup handles POST /api/v1/orders/:id/pickup/decline.
func (s *Server) DeclinePickup(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeclinePickupCommand(orderID, actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.declinePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcknowledgePickup handles POST /api/v1/orders/:id/pickup/acknowledge.
func (s *Server) AcknowledgePickup(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAcknowledgePickupCommand(orderID, actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acknowledgePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerOrdersResponse(orders))
}

// GetRestaurantOrders handles GET /api/v1/restaurant/orders.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	query, err := queries.NewGetRestaurantOrdersQuery(actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.restaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantOrdersResponse(orders))
}

// GetAvailableRiders handles GET /api/v1/riders/available.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	query, err := queries.NewGetAvailableRidersQuery(actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	riders, err := s.availableRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RiderResponse, len(riders))
	for i, rider := range riders {
		response[i] = RiderResponse{
			ID:   rider.ID.String(),
			Name: rider.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnacknowledgedPickups handles GET /api/v1/pickups/unacknowledged.
func (s *Server) GetUnacknowledgedPickups(ctx echo.Context) error {
	query, err := queries.NewGetUnacknowledgedPickupsQuery(actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	pickups, err := s.unacknowledgedPickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PickupResponse, len(pickups))
	for i, pickup := range pickups {
		response[i] = PickupResponse{
			OrderID:      pickup.ID.String(),
			RestaurantID: pickup.RestaurantID.String(),
			TotalCents:   pickup.TotalCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// WatchPickups handles POST /api/v1/pickups/watch. It opens a pickup watch
// session for the calling customer: a background poller that surfaces
// picked up orders one at a time until each is acknowledged. Notices go to
// the service log until a push channel exists.
func (s *Server) WatchPickups(ctx echo.Context) error {
	caller := actor(ctx)
	if caller.Role() != principal.RoleCustomer {
		return writeError(ctx, errs.NewAuthorizationError(caller.ID().String(), "watch pickups"))
	}

	if err := s.watchers.StartFor(caller.ID(), logNotice(caller.ID())); err != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	return ctx.NoContent(http.StatusAccepted)
}

// UnwatchPickups handles DELETE /api/v1/pickups/watch, ending the caller's
// watch session.
func (s *Server) UnwatchPickups(ctx echo.Context) error {
	s.watchers.StopFor(actor(ctx).ID())
	return ctx.NoContent(http.StatusNoContent)
}

func logNotice(customerID kernel.UUID) notifications.Sink {
	return func(notice notifications.PickupNotice) {
		slog.Info("Order picked up",
			"component", "http",
			"customer_id", customerID.String(),
			"order_id", notice.OrderID.String(),
			"restaurant_id", notice.RestaurantID.String())
	}
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
