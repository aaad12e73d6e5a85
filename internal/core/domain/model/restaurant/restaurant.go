// Package restaurant models the restaurant referenced by orders. The order
// workflow reads restaurants to check manager ownership and to resolve menu
// items; it never mutates them — restaurant management is an administrative
// concern handled outside the core.
package restaurant

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	hourMin = 0
	hourMax = 23
)

var (
	// ErrRestaurantIsNotConstructed is returned when using an improperly
	// initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	// ErrNameIsRequired is returned when a restaurant has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// MenuItem is a dish definition on the restaurant's menu.
type MenuItem struct {
	ID    string
	Name  string
	Price kernel.Money
}

// Restaurant is the read model for a restaurant: identity, the manager who
// owns it, the menu, and the advisory opening-hours window.
//
// Invariants:
//   - id and managerID are valid UUIDs
//   - name is non-empty
//   - opening and closing hours are within 0..23
//
// The opening-hours window is informational only: order placement is not
// gated on it.
type Restaurant struct {
	id          kernel.UUID
	managerID   kernel.UUID
	name        string
	menu        []MenuItem
	openingHour int
	closingHour int
	guard       guard.ConstructorGuard
}

// NewRestaurant creates a validated Restaurant read model.
func NewRestaurant(
	id kernel.UUID,
	managerID kernel.UUID,
	name string,
	menu []MenuItem,
	openingHour, closingHour int,
) (*Restaurant, error) {
	r := &Restaurant{
		menu:  menu,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setManagerID(managerID),
		r.setName(name),
		r.setHours(openingHour, closingHour),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant was constructed through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Manager returns the id of the manager principal who owns the restaurant.
func (r *Restaurant) Manager() kernel.UUID {
	return r.managerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Menu returns the menu item definitions.
func (r *Restaurant) Menu() []MenuItem {
	return r.menu
}

// FindMenuItem looks up a menu item definition by its id. Order placement
// resolves names and prices server side through this lookup so the stored
// order never trusts client supplied prices.
func (r *Restaurant) FindMenuItem(id string) (MenuItem, bool) {
	for _, item := range r.menu {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Hours returns the advisory opening and closing hours.
func (r *Restaurant) Hours() (opening, closing int) {
	return r.openingHour, r.closingHour
}

// IsManagedBy reports whether the given principal owns this restaurant.
// Manager-gated lifecycle operations use this for the ownership half of
// their authorization check.
func (r *Restaurant) IsManagedBy(principalID kernel.UUID) bool {
	return r.managerID.IsEqual(principalID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	r.managerID = managerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setHours(opening, closing int) error {
	if opening < hourMin || opening > hourMax {
		return errs.NewValueIsOutOfRangeError("opening hour", opening, hourMin, hourMax)
	}
	if closing < hourMin || closing > hourMax {
		return errs.NewValueIsOutOfRangeError("closing hour", closing, hourMin, hourMax)
	}
	r.openingHour = opening
	r.closingHour = closing
	return nil
}
