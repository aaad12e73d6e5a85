// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PrincipalRepoFactory provides access to the principal repository within a transaction.
	PrincipalRepoFactory interface {
		PrincipalRepository() ports.PrincipalRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that touch nothing but the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages transactions for order placement, which reads
	// the restaurant menu and writes the new order.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
	}

	// PlaceOrderUoWFactory creates new placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// AssignRiderUoW manages transactions for rider assignment, which reads
	// the rider principal and their workload before writing the order.
	AssignRiderUoW interface {
		TxManager
		OrderRepoFactory
		PrincipalRepoFactory
	}

	// AssignRiderUoWFactory creates new assignment unit of work instances.
	AssignRiderUoWFactory interface {
		Create() AssignRiderUoW
	}
)
