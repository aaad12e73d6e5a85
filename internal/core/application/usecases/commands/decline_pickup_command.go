package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/guard"
)

var ErrDeclinePickupCommandIsNotConstructed = errors.New(
	"DeclinePickupCommand must be created via NewDeclinePickupCommand constructor",
)

// DeclinePickupCommand represents a rider handing an assigned order back:
// the order returns to ready and becomes assignable again.
type DeclinePickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   *principal.Principal

	guard guard.ConstructorGuard
}

// NewDeclinePickupCommand creates a command to decline an order pickup.
func NewDeclinePickupCommand(orderID kernel.UUID, actor *principal.Principal) (DeclinePickupCommand, error) {
	cmd := DeclinePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return DeclinePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclinePickupCommand) Validate() error {
	return c.guard.Validate(ErrDeclinePickupCommandIsNotConstructed)
}

// OrderID returns the order being declined.
func (c DeclinePickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the rider declining the pickup.
func (c DeclinePickupCommand) Actor() *principal.Principal {
	return c.actor
}

func (c *DeclinePickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeclinePickupCommand) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
