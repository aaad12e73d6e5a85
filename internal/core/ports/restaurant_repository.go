package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for the restaurant
// read model: menu, manager binding, and opening hours.
type RestaurantRepository interface {
	// Get retrieves a restaurant by its unique identifier.
	// Returns an ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
