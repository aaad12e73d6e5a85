package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/guard"
)

var ErrAcknowledgePickupCommandIsNotConstructed = errors.New(
	"AcknowledgePickupCommand must be created via NewAcknowledgePickupCommand constructor",
)

// AcknowledgePickupCommand represents a customer dismissing the pickup
// notification for one of their orders.
type AcknowledgePickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   *principal.Principal

	guard guard.ConstructorGuard
}

// NewAcknowledgePickupCommand creates a command to dismiss a pickup
// notification.
func NewAcknowledgePickupCommand(orderID kernel.UUID, actor *principal.Principal) (AcknowledgePickupCommand, error) {
	cmd := AcknowledgePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return AcknowledgePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcknowledgePickupCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgePickupCommandIsNotConstructed)
}

// OrderID returns the order whose notification is dismissed.
func (c AcknowledgePickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the customer dismissing the notification.
func (c AcknowledgePickupCommand) Actor() *principal.Principal {
	return c.actor
}

func (c *AcknowledgePickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcknowledgePickupCommand) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
