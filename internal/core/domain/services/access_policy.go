package services

import (
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"
)

// Operation enumerates the order lifecycle operations subject to role
// authorization.
type Operation int

const (
	// OpUnknown represents an unresolved operation and is never permitted.
	OpUnknown Operation = iota

	// OpPlaceOrder creates a new order.
	OpPlaceOrder

	// OpAdvanceOrder moves an order through the preparation statuses.
	OpAdvanceOrder

	// OpAssignRider binds a rider to a ready order.
	OpAssignRider

	// OpAcceptPickup marks a delivering order as picked up.
	OpAcceptPickup

	// OpDeclinePickup returns a delivering order to ready.
	OpDeclinePickup

	// OpCancelOrder moves an order to the terminal cancelled status.
	OpCancelOrder

	// OpAcknowledgePickup dismisses the customer's pickup notification.
	OpAcknowledgePickup
)

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		OpUnknown:           "unknown",
		OpPlaceOrder:        "place order",
		OpAdvanceOrder:      "advance order",
		OpAssignRider:       "assign rider",
		OpAcceptPickup:      "accept pickup",
		OpDeclinePickup:     "decline pickup",
		OpCancelOrder:       "cancel order",
		OpAcknowledgePickup: "acknowledge pickup",
	}
}

// String returns the operation name used in authorization errors and logs.
func (op Operation) String() string {
	if str, ok := getOperationStrings()[op]; ok {
		return str
	}
	return "unknown"
}

// AccessPolicy decides which roles may trigger which lifecycle operations.
//
// The policy is a closed allow table. A role/operation pair that is not
// listed is denied, so an unresolved role or a new operation is rejected by
// default rather than silently permitted. Admins administer accounts and
// restaurants, not orders, so they appear in no entry.
//
// The policy only answers "may this role do this at all". Ownership checks,
// like a manager only touching their own restaurant's orders, belong to the
// command handlers that have both objects in hand.
type AccessPolicy struct{}

// NewAccessPolicy creates the role authorization policy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

func getAllowedRoles() map[Operation][]principal.Role {
	return map[Operation][]principal.Role{
		OpPlaceOrder:        {principal.RoleCustomer},
		OpAdvanceOrder:      {principal.RoleManager},
		OpAssignRider:       {principal.RoleManager},
		OpAcceptPickup:      {principal.RoleRider},
		OpDeclinePickup:     {principal.RoleRider},
		OpCancelOrder:       {principal.RoleManager, principal.RoleCustomer},
		OpAcknowledgePickup: {principal.RoleCustomer},
	}
}

// Authorize checks that the principal's role may trigger the operation.
// Returns an AuthorizationError on denial.
func (p AccessPolicy) Authorize(actor *principal.Principal, op Operation) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	for _, role := range getAllowedRoles()[op] {
		if actor.Role() == role {
			return nil
		}
	}

	return errs.NewAuthorizationError(actor.ID().String(), op.String())
}
