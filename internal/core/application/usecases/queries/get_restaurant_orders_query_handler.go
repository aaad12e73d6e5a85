package queries

import (
	"context"
	"encoding/json"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler reads the order board of one restaurant
// straight from the store.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant board
// queries.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle returns the restaurant's orders, newest first.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]GetRestaurantOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetRestaurantOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			rider_id,
			status,
			items,
			total_cents
		FROM orders
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRestaurantOrdersQueryResponse
		var id, customerID uuid.UUID
		var riderID *uuid.UUID
		var status int
		var rawItems []byte

		err = rows.Scan(
			&id,
			&customerID,
			&riderID,
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

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = custID

		if riderID != nil {
			rID, idErr := kernel.UUIDFromBytes(riderID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.RiderID = &rID
		}

		resp.Status = order.Status(status).String()

		if err = json.Unmarshal(rawItems, &resp.Items); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
