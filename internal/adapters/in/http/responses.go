package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	RestaurantID    string             `json:"restaurant_id"`
	Lines           []OrderLineRequest `json:"lines"`
	PaymentApproved bool               `json:"payment_approved"`
}

// OrderLineRequest is one cart line: the dish and how many of it.
type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderResponse returns the id of the newly placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// AdvanceOrderRequest is the body of POST /orders/:id/advance.
type AdvanceOrderRequest struct {
	Target string `json:"target"`
}

// AssignRiderRequest is the body of POST /orders/:id/assign-rider.
type AssignRiderRequest struct {
	RiderID string `json:"rider_id"`
}

// OrderLineResponse is one purchased line in an order listing.
type OrderLineResponse struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// GeoPointResponse is a geocoded delivery location.
type GeoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CustomerOrderResponse is one order in GET /orders.
type CustomerOrderResponse struct {
	ID           string              `json:"id"`
	RestaurantID string              `json:"restaurant_id"`
	Status       string              `json:"status"`
	Items        []OrderLineResponse `json:"items"`
	TotalCents   int64               `json:"total_cents"`
	DeliveryPin  *GeoPointResponse   `json:"delivery_pin,omitempty"`
}

// RestaurantOrderResponse is one order in GET /restaurant/orders.
type RestaurantOrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	RiderID    *string             `json:"rider_id,omitempty"`
	Status     string              `json:"status"`
	Items      []OrderLineResponse `json:"items"`
	TotalCents int64               `json:"total_cents"`
}

// RiderResponse is one rider in GET /riders/available.
type RiderResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PickupResponse is one pending pickup notice in GET /pickups/unacknowledged.
type PickupResponse struct {
	OrderID      string `json:"order_id"`
	RestaurantID string `json:"restaurant_id"`
	TotalCents   int64  `json:"total_cents"`
}

func toCustomerOrdersResponse(orders []queries.GetCustomerOrdersQueryResponse) []CustomerOrderResponse {
	response := make([]CustomerOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = CustomerOrderResponse{
			ID:           o.ID.String(),
			RestaurantID: o.RestaurantID.String(),
			Status:       o.Status,
			Items:        toLinesResponse(o.Items),
			TotalCents:   o.TotalCents,
		}
		if o.DeliveryPin != nil {
			response[i].DeliveryPin = &GeoPointResponse{
				Latitude:  o.DeliveryPin.Latitude,
				Longitude: o.DeliveryPin.Longitude,
			}
		}
	}
	return response
}

func toRestaurantOrdersResponse(orders []queries.GetRestaurantOrdersQueryResponse) []RestaurantOrderResponse {
	response := make([]RestaurantOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = RestaurantOrderResponse{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			Status:     o.Status,
			Items:      toLinesResponse(o.Items),
			TotalCents: o.TotalCents,
		}
		if o.RiderID != nil {
			riderID := o.RiderID.String()
			response[i].RiderID = &riderID
		}
	}
	return response
}

func toLinesResponse(lines []queries.OrderLineResponse) []OrderLineResponse {
	response := make([]OrderLineResponse, len(lines))
	for i, line := range lines {
		response[i] = OrderLineResponse{
			MenuItemID:     line.MenuItemID,
			Name:           line.Name,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
		}
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses: validation
// failures are 400, denied operations 403, missing objects 404, state
// conflicts 409, and an unreachable store 503.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderLinesAreRequired),
		errors.Is(err, commands.ErrPaymentNotApproved),
		errors.Is(err, commands.ErrTargetStatusIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrAuthorization):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStaleState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrRiderBusy),
		errors.Is(err, errs.ErrInvalidRider):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
