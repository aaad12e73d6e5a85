package principal

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role is the closed set of actor roles recognized by the order workflow.
// Every principal resolves to exactly one role; anything outside the set is
// RoleUnknown and is denied all mutating operations.
type Role int

const (
	// RoleUnknown represents an unresolved or invalid role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders, cancels pending ones, and acknowledges
	// pickup notifications.
	RoleCustomer

	// RoleManager runs a restaurant: advances and cancels its orders and
	// assigns riders.
	RoleManager

	// RoleRider delivers orders: accepts or declines pickups assigned to them.
	RoleRider

	// RoleAdmin administers accounts and restaurants. Administration is
	// outside the order workflow, so the role carries no lifecycle powers.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleManager:  "manager",
		RoleRider:    "rider",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleManager:  "manager",
		RoleRider:    "rider",
		RoleAdmin:    "admin",
	}
}

// RoleFromString resolves the stored role name to a Role value.
// Unrecognized names map to an error, never to a usable role: the
// authorization layer fails closed on anything it cannot resolve.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a recognized role", s))
}

// Validate checks that the role belongs to the closed set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase role name used in persistence and logs.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
