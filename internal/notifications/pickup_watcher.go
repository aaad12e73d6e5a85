package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PickupNotice is the alert token handed to the sink. The customer
// acknowledges it by order id.
type PickupNotice struct {
	OrderID      kernel.UUID
	RestaurantID kernel.UUID
}

// Sink receives pickup notices for display to the customer.
type Sink func(notice PickupNotice)

// pickupLister is the slice of the order store the watcher reads: picked up
// orders of one customer with the notice still unacknowledged, oldest
// first.
type pickupLister interface {
	GetUnacknowledgedPickedUp(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}

// PickupWatcher raises pickup alerts for one customer.
//
// The watcher holds at most one notice in flight. While that notice is
// unacknowledged it stays silent; once the order disappears from the
// unacknowledged set the watcher raises the next qualifying order, oldest
// first. An acknowledged order can therefore never be re-raised.
type PickupWatcher struct {
	customerID kernel.UUID
	lister     pickupLister
	sink       Sink
	interval   time.Duration
	cron       *cron.Cron
	logger     *slog.Logger

	mu      sync.Mutex
	current *kernel.UUID
}

// NewPickupWatcher creates a watcher polling every interval.
func NewPickupWatcher(
	customerID kernel.UUID,
	lister pickupLister,
	sink Sink,
	interval time.Duration,
	logger *slog.Logger,
) *PickupWatcher {
	return &PickupWatcher{
		customerID: customerID,
		lister:     lister,
		sink:       sink,
		interval:   interval,
		cron:       cron.New(cron.WithSeconds()),
		logger: logger.With(
			"component", "pickup_watcher",
			"customer_id", customerID.String()),
	}
}

// Start begins polling on the configured cadence.
func (w *PickupWatcher) Start() error {
	_, err := w.cron.AddFunc(fmt.Sprintf("@every %s", w.interval), func() {
		w.CheckNow(context.Background())
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.InfoContext(context.Background(), "Pickup watcher started",
		"interval", w.interval.String())
	return nil
}

// Stop cancels the polling timer. No notice is raised after Stop returns.
func (w *PickupWatcher) Stop() {
	w.cron.Stop()
	w.logger.InfoContext(context.Background(), "Pickup watcher stopped")
}

// CheckNow runs one poll cycle immediately. The cron schedule calls it on
// the cadence; callers with a push signal from the store may call it
// directly.
func (w *PickupWatcher) CheckNow(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pending, err := w.lister.GetUnacknowledgedPickedUp(ctx, w.customerID)
	if err != nil {
		w.logger.WarnContext(ctx, "Pickup poll failed", "error", err)
		return
	}

	if w.current != nil {
		if containsOrder(pending, *w.current) {
			// Still waiting for the customer to acknowledge.
			return
		}
		w.current = nil
	}

	if len(pending) == 0 {
		return
	}

	next := pending[0]
	id := next.ID()
	w.current = &id
	w.sink(PickupNotice{
		OrderID:      next.ID(),
		RestaurantID: next.Restaurant(),
	})
}

func containsOrder(orders []*order.Order, id kernel.UUID) bool {
	for _, o := range orders {
		if o.ID().IsEqual(id) {
			return true
		}
	}
	return false
}
