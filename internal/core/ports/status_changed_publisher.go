package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderStatusChanged is the integration event emitted after an order status
// transition has been committed.
type OrderStatusChanged struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	Status       order.Status
	OccurredAt   time.Time
}

// StatusChangedPublisher publishes order status transitions to interested
// consumers outside the service (kitchen displays, rider apps, analytics).
//
// Publishing is best effort: it happens after the transaction commits, and a
// publish failure never rolls the transition back. Handlers log the failure
// and move on.
type StatusChangedPublisher interface {
	// Publish emits a status change event.
	Publish(ctx context.Context, event OrderStatusChanged) error
}
