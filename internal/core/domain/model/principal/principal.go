package principal

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Address is the delivery address attached to a customer profile. Only the
// postcode participates in core behavior (geocoding annotation); the
// remaining lines are carried verbatim for display.
type Address struct {
	FirstLine  string
	SecondLine string
	City       string
	County     string
	Postcode   string
	Country    string
}

// Principal represents an authenticated actor resolved through the role
// directory: a customer, restaurant manager, rider, or administrator.
//
// Principals are read-only inside the order workflow. They are resolved
// once per request and passed explicitly into every operation; nothing in
// the core reads an ambient "current user".
//
// Invariants:
//   - id is a valid UUID
//   - role belongs to the closed Role set
//   - managers reference the restaurant they own via restaurantID
type Principal struct {
	// id uniquely identifies the principal
	id kernel.UUID
	// role is the resolved role from the directory
	role Role
	// name is the display name
	name string
	// address is the profile delivery address (customers; zero for others)
	address Address
	// restaurantID links a manager to their restaurant (nil for other roles)
	restaurantID *kernel.UUID
	// guard ensures the principal was properly constructed
	guard guard.ConstructorGuard
}

// NewPrincipal creates a validated Principal. The id must be a valid UUID
// and the role must belong to the closed role set.
func NewPrincipal(id kernel.UUID, role Role, name string) (*Principal, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}

	return &Principal{
		id:    id,
		role:  role,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Principal was constructed through NewPrincipal.
func (p *Principal) Validate() error {
	if p == nil {
		return ErrPrincipalIsNotConstructed
	}
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the principal's unique identifier.
func (p *Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the resolved role.
func (p *Principal) Role() Role {
	return p.role
}

// Name returns the display name.
func (p *Principal) Name() string {
	return p.name
}

// Address returns the profile delivery address.
func (p *Principal) Address() Address {
	return p.address
}

// Restaurant returns the restaurant owned by a manager principal, or nil.
func (p *Principal) Restaurant() *kernel.UUID {
	return p.restaurantID
}

// WithAddress attaches a delivery address to the principal's profile.
// Returns the principal for construction chaining.
func (p *Principal) WithAddress(address Address) *Principal {
	p.address = address
	return p
}

// WithRestaurant links a manager principal to the restaurant they own.
// Returns the principal for construction chaining.
func (p *Principal) WithRestaurant(restaurantID kernel.UUID) *Principal {
	p.restaurantID = &restaurantID
	return p
}
