package commands

import (
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"
)

// Ownership checks cover the half of authorization the role table cannot:
// whether this particular actor may touch this particular order. The role
// table says a manager may advance orders; these checks say only the manager
// of the restaurant the order was placed at.

// requireManagedOrder ensures the actor manages the restaurant the order
// belongs to.
func requireManagedOrder(actor *principal.Principal, o *order.Order, operation string) error {
	restaurantID := actor.Restaurant()
	if restaurantID == nil || !restaurantID.IsEqual(o.Restaurant()) {
		return errs.NewAuthorizationError(actor.ID().String(), operation)
	}
	return nil
}

// requireOwnOrder ensures the actor is the customer who placed the order.
func requireOwnOrder(actor *principal.Principal, o *order.Order, operation string) error {
	if !o.Customer().IsEqual(actor.ID()) {
		return errs.NewAuthorizationError(actor.ID().String(), operation)
	}
	return nil
}

// requireAssignedRider ensures the actor is the rider the order is bound to.
func requireAssignedRider(actor *principal.Principal, o *order.Order, operation string) error {
	riderID := o.Rider()
	if riderID == nil || !riderID.IsEqual(actor.ID()) {
		return errs.NewAuthorizationError(actor.ID().String(), operation)
	}
	return nil
}
