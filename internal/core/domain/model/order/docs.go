// Package order contains the order aggregate and its lifecycle state
// machine. The aggregate owns every invariant of the order record — status
// ordering, rider binding, total integrity, notification acknowledgement —
// while who may trigger which transition is decided by the services layer.
package order
