package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists the order history of the requesting customer,
// newest first. Only customers may run it; each customer sees only their own
// orders.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	actor *principal.Principal

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the actor's own orders.
// The actor must hold the customer role.
func NewGetCustomerOrdersQuery(actor *principal.Principal) (GetCustomerOrdersQuery, error) {
	q := GetCustomerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Actor returns the customer requesting their order history.
func (q GetCustomerOrdersQuery) Actor() *principal.Principal {
	return q.actor
}

func (q *GetCustomerOrdersQuery) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != principal.RoleCustomer {
		return errs.NewAuthorizationError(actor.ID().String(), "get customer orders")
	}

	q.actor = actor
	return nil
}

// GetCustomerOrdersQueryResponse is one order in the customer's history.
// DeliveryPin carries the geocoded profile address when the geocoder could
// resolve it; it is nil otherwise.
type GetCustomerOrdersQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Status       string
	Items        []OrderLineResponse
	TotalCents   int64
	DeliveryPin  *ports.GeoPoint
}

// OrderLineResponse is one purchased line inside an order response.
type OrderLineResponse struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}
