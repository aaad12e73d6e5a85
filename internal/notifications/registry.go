package notifications

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// WatcherRegistry owns one PickupWatcher per live customer session.
//
// Sessions come and go while the service runs, so the registry starts a
// watcher on session open and stops it on session close. StopAll is the
// shutdown hook: after it returns, no timer is running.
type WatcherRegistry struct {
	lister   pickupLister
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	watchers map[string]*PickupWatcher
}

// NewWatcherRegistry creates a registry producing watchers with the given
// store slice and polling cadence.
func NewWatcherRegistry(lister pickupLister, interval time.Duration, logger *slog.Logger) *WatcherRegistry {
	return &WatcherRegistry{
		lister:   lister,
		interval: interval,
		logger:   logger,
		watchers: make(map[string]*PickupWatcher),
	}
}

// StartFor starts a watcher for the customer, delivering notices to sink.
// Starting an already watched customer is an error; stop the old session
// first.
func (r *WatcherRegistry) StartFor(customerID kernel.UUID, sink Sink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := customerID.String()
	if _, exists := r.watchers[key]; exists {
		return fmt.Errorf("customer %s is already being watched", key)
	}

	watcher := NewPickupWatcher(customerID, r.lister, sink, r.interval, r.logger)
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start pickup watcher: %w", err)
	}

	r.watchers[key] = watcher
	return nil
}

// StopFor stops the customer's watcher, if any.
func (r *WatcherRegistry) StopFor(customerID kernel.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := customerID.String()
	if watcher, exists := r.watchers[key]; exists {
		watcher.Stop()
		delete(r.watchers, key)
	}
}

// StopAll stops every live watcher. Used on service shutdown.
func (r *WatcherRegistry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, watcher := range r.watchers {
		watcher.Stop()
		delete(r.watchers, key)
	}
}
