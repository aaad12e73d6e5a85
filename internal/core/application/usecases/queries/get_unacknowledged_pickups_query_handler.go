package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnacknowledgedPickupsQueryHandler retrieves pickup notices the customer
// has not acknowledged yet.
type GetUnacknowledgedPickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnacknowledgedPickupsQueryHandler creates a handler for pending
// pickup notice queries.
func NewGetUnacknowledgedPickupsQueryHandler(db *gorm.DB) GetUnacknowledgedPickupsQueryHandler {
	return GetUnacknowledgedPickupsQueryHandler{db: db}
}

// Handle returns the actor's unacknowledged picked up orders, oldest first.
func (h GetUnacknowledgedPickupsQueryHandler) Handle(
	ctx context.Context,
	query GetUnacknowledgedPickupsQuery,
) ([]GetUnacknowledgedPickupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pickups := make([]GetUnacknowledgedPickupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			total_cents
		FROM orders
		WHERE customer_id = ?
		  AND status = ?
		  AND notification_acknowledged = false
		ORDER BY created_at ASC
	`, query.Actor().ID().Bytes(), int(order.PickedUp)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnacknowledgedPickupsQueryResponse
		var id, restaurantID uuid.UUID

		err = rows.Scan(
			&id,
			&restaurantID,
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

		pickups = append(pickups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
