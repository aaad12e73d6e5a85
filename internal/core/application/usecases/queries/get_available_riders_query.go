package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
	"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
)

// GetAvailableRidersQuery lists riders who can take a delivery right now,
// meaning riders with no order currently on the road. Managers use it when
// handing an order over.
type GetAvailableRidersQuery struct { //nolint:recvcheck //using for validation
	actor *principal.Principal

	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates a query for free riders. The actor
// must hold the manager role.
func NewGetAvailableRidersQuery(actor *principal.Principal) (GetAvailableRidersQuery, error) {
	q := GetAvailableRidersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return GetAvailableRidersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// Actor returns the manager requesting the rider list.
func (q GetAvailableRidersQuery) Actor() *principal.Principal {
	return q.actor
}

func (q *GetAvailableRidersQuery) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != principal.RoleManager {
		return errs.NewAuthorizationError(actor.ID().String(), "get available riders")
	}

	q.actor = actor
	return nil
}

// GetAvailableRidersQueryResponse is one rider free to take a delivery.
type GetAvailableRidersQueryResponse struct {
	ID   kernel.UUID
	Name string
}
