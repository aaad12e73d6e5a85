// Package notifications surfaces pickup alerts to customers.
//
// A PickupWatcher polls the order store on a fixed cadence using
// github.com/robfig/cron/v3 and raises an alert when one of the customer's
// orders has been picked up and not yet acknowledged. Alerts are edge
// triggered and strictly sequential: one alert is in flight at a time,
// oldest qualifying order first, and the watcher only moves on after the
// customer acknowledges the current one through AcknowledgePickupCommand.
//
// Watchers are per customer session. The WatcherRegistry tracks the live
// watchers and tears them down when the session ends, so no alert outlives
// its session.
package notifications
