package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("order lines are required")
	ErrPaymentNotApproved    = errors.New("payment is not approved")
)

// OrderLine is one requested cart line: which menu item and how many. Names
// and prices are resolved from the restaurant menu by the handler, never
// taken from the caller.
type OrderLine struct {
	MenuItemID string
	Quantity   int
}

// PlaceOrderCommand represents a customer's request to place an order at a
// restaurant. The payment approval flag comes from the checkout flow; an
// unapproved payment never reaches the handler.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actor        *principal.Principal
	restaurantID kernel.UUID
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates the
// ids, requires at least one line, and rejects unapproved payments.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	actor *principal.Principal,
	restaurantID kernel.UUID,
	lines []OrderLine,
	paymentApproved bool,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		validatePayment(paymentApproved),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the principal placing the order.
func (c PlaceOrderCommand) Actor() *principal.Principal {
	return c.actor
}

// RestaurantID returns the restaurant the order is placed at.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the requested cart lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	c.lines = lines
	return nil
}

func validatePayment(paymentApproved bool) error {
	if !paymentApproved {
		return ErrPaymentNotApproved
	}
	return nil
}
