package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/guard"
)

var ErrAcceptPickupCommandIsNotConstructed = errors.New(
	"AcceptPickupCommand must be created via NewAcceptPickupCommand constructor",
)

// AcceptPickupCommand represents a rider confirming they picked up the order
// assigned to them.
type AcceptPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   *principal.Principal

	guard guard.ConstructorGuard
}

// NewAcceptPickupCommand creates a command to confirm an order pickup.
func NewAcceptPickupCommand(orderID kernel.UUID, actor *principal.Principal) (AcceptPickupCommand, error) {
	cmd := AcceptPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return AcceptPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPickupCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPickupCommandIsNotConstructed)
}

// OrderID returns the order being picked up.
func (c AcceptPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the rider confirming the pickup.
func (c AcceptPickupCommand) Actor() *principal.Principal {
	return c.actor
}

func (c *AcceptPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptPickupCommand) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
