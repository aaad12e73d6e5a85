package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history straight
// from the store and annotates it with the geocoded delivery address.
//
// Geocoding is decoration, not data: when the geocoder fails the history is
// still returned, with a nil pin and a warning in the log.
type GetCustomerOrdersQueryHandler struct {
	db       *gorm.DB
	geocoder ports.Geocoder
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB, geocoder ports.Geocoder) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db, geocoder: geocoder}
}

// Handle returns the actor's orders, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			status,
			items,
			total_cents
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.Actor().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pin := h.locateDeliveryAddress(ctx, query)

	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		var id, restaurantID uuid.UUID
		var status int
		var rawItems []byte

		err = rows.Scan(
			&id,
			&restaurantID,
			&status,
			&rawItems,
			&resp.TotalCents,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		restID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RestaurantID = restID

		resp.Status = order.Status(status).String()

		if err = json.Unmarshal(rawItems, &resp.Items); err != nil {
			return nil, err
		}

		resp.DeliveryPin = pin
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// locateDeliveryAddress geocodes the actor's profile postcode. The customer
// has one profile address, so a single lookup annotates every order in the
// response.
func (h GetCustomerOrdersQueryHandler) locateDeliveryAddress(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) *ports.GeoPoint {
	postcode := query.Actor().Address().Postcode
	if h.geocoder == nil || postcode == "" {
		return nil
	}

	point, err := h.geocoder.Locate(ctx, postcode)
	if err != nil {
		slog.Warn("failed to geocode delivery address",
			"component", "queries",
			"customer_id", query.Actor().ID().String(),
			"error", err)
		return nil
	}

	return &point
}
