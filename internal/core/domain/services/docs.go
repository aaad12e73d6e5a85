// Package services contains domain services that coordinate behavior across
// aggregates: the access policy that gates lifecycle operations by role and
// the rider assigner that binds an available rider to a ready order.
package services
