package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery lists the orders placed against the restaurant
// the requesting manager runs, newest first. The restaurant comes from the
// manager's profile, so a manager can never read another kitchen's board.
type GetRestaurantOrdersQuery struct { //nolint:recvcheck //using for validation
	actor        *principal.Principal
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for the actor's restaurant
// board. The actor must be a manager with a restaurant attached.
func NewGetRestaurantOrdersQuery(actor *principal.Principal) (GetRestaurantOrdersQuery, error) {
	q := GetRestaurantOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// Actor returns the manager requesting the board.
func (q GetRestaurantOrdersQuery) Actor() *principal.Principal {
	return q.actor
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetRestaurantOrdersQuery) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != principal.RoleManager || actor.Restaurant() == nil {
		return errs.NewAuthorizationError(actor.ID().String(), "get restaurant orders")
	}

	q.actor = actor
	q.restaurantID = *actor.Restaurant()
	return nil
}

// GetRestaurantOrdersQueryResponse is one order on the restaurant board.
// RiderID is nil until a rider takes the order.
type GetRestaurantOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	RiderID    *kernel.UUID
	Status     string
	Items      []OrderLineResponse
	TotalCents int64
}
