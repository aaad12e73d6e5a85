package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an Item that was not
// created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a menu item reference, its display name, the
// unit price captured at placement time, and a quantity. Items are immutable
// once the order is created — editing a placed order is not supported.
//
// Invariants:
//   - menu item id and name are non-empty
//   - unit price is non-negative (zero is allowed for promotional items)
//   - quantity is at least 1
type Item struct {
	menuItemID string
	name       string
	unitPrice  kernel.Money
	quantity   int
	guard      guard.ConstructorGuard
}

// NewItem creates a validated line item. The unit price is a Money amount
// and therefore already non-negative; quantity must be at least 1.
func NewItem(menuItemID, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.unitPrice = unitPrice
	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item id.
func (i Item) MenuItemID() string {
	return i.menuItemID
}

// Name returns the display name captured at placement time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price captured at placement time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MultiplyBy(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID string) error {
	if menuItemID == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
