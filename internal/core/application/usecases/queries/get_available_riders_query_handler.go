package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/principal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableRidersQueryHandler retrieves riders with no active delivery
// from the store. A rider counts as busy only while an order they took is
// still on the road; once they hand it over they reappear here.
type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidersQueryHandler creates a handler for free rider
// queries.
func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle returns riders without an in-flight delivery, sorted by name.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]GetAvailableRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetAvailableRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name
		FROM principals p
		WHERE p.role = ?
		  AND NOT EXISTS (
			SELECT 1 FROM orders o
			WHERE o.rider_id = p.id AND o.status = ?
		  )
		ORDER BY p.name
	`, principal.RoleRider.String(), int(order.Delivering)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rider GetAvailableRidersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&rider.Name,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rider.ID = riderID

		riders = append(riders, rider)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
