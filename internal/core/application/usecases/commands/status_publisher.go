package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// StatusPublisher is the slice of the publishing port the command handlers
// need. Satisfied by ports.StatusChangedPublisher implementations.
type StatusPublisher interface {
	Publish(ctx context.Context, event ports.OrderStatusChanged) error
}

// publishStatusChange announces a committed status transition. Publishing is
// best effort: the transition is already durable, so a publish failure is
// logged and never propagated to the caller.
func publishStatusChange(ctx context.Context, publisher StatusPublisher, o *order.Order) {
	if publisher == nil {
		return
	}

	event := ports.OrderStatusChanged{
		OrderID:      o.ID(),
		CustomerID:   o.Customer(),
		RestaurantID: o.Restaurant(),
		Status:       o.Status(),
		OccurredAt:   time.Now(),
	}

	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish order status change",
			slog.String("component", "commands"),
			slog.String("order_id", o.ID().String()),
			slog.String("status", o.Status().String()),
			slog.Any("error", err))
	}
}
