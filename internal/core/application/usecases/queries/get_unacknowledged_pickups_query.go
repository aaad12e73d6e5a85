package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetUnacknowledgedPickupsQueryIsNotConstructed = errors.New(
	"GetUnacknowledgedPickupsQuery must be created via NewGetUnacknowledgedPickupsQuery constructor",
)

// GetUnacknowledgedPickupsQuery lists the actor's picked up orders whose
// pickup notice the customer has not yet acknowledged, oldest first. This
// is what a client polls to surface "your order is on its way" banners.
type GetUnacknowledgedPickupsQuery struct { //nolint:recvcheck //using for validation
	actor *principal.Principal

	guard guard.ConstructorGuard
}

// NewGetUnacknowledgedPickupsQuery creates a query for the actor's pending
// pickup notices. The actor must hold the customer role.
func NewGetUnacknowledgedPickupsQuery(actor *principal.Principal) (GetUnacknowledgedPickupsQuery, error) {
	q := GetUnacknowledgedPickupsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return GetUnacknowledgedPickupsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnacknowledgedPickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnacknowledgedPickupsQueryIsNotConstructed)
}

// Actor returns the customer polling for pickup notices.
func (q GetUnacknowledgedPickupsQuery) Actor() *principal.Principal {
	return q.actor
}

func (q *GetUnacknowledgedPickupsQuery) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != principal.RoleCustomer {
		return errs.NewAuthorizationError(actor.ID().String(), "get unacknowledged pickups")
	}

	q.actor = actor
	return nil
}

// GetUnacknowledgedPickupsQueryResponse is one pickup notice awaiting
// acknowledgement.
type GetUnacknowledgedPickupsQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	TotalCents   int64
}
