// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the outbound adapters
// for geocoding, role resolution, and status change publishing.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is conditional: the write only succeeds if the stored status and
// rider binding still equal the ones the aggregate was loaded with (see
// Order.PersistedStatus and Order.PersistedRider). A concurrent transition
// makes the write fail with a StaleStateError, which callers surface as a
// conflict rather than overwriting the other actor.
type OrderRepository interface {
	// Add persists a freshly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status transition or acknowledgement. Fails with a
	// StaleStateError when the stored status or rider binding no longer
	// matches what the aggregate was loaded with.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by a customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByRestaurant retrieves all orders of a restaurant, newest first.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetActiveByRider retrieves the rider's orders still out for delivery.
	// Used to enforce the one active delivery per rider rule.
	GetActiveByRider(ctx context.Context, riderID kernel.UUID) ([]*order.Order, error)

	// GetUnacknowledgedPickedUp retrieves a customer's picked up orders
	// whose pickup notification has not been acknowledged, oldest first.
	GetUnacknowledgedPickedUp(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
