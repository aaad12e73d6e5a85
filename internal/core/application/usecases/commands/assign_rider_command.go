package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a manager's request to hand a ready order to
// a specific rider.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   *principal.Principal
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to an order.
func NewAssignRiderCommand(
	orderID kernel.UUID,
	actor *principal.Principal,
	riderID kernel.UUID,
) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the order to hand over.
func (c AssignRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the manager making the assignment.
func (c AssignRiderCommand) Actor() *principal.Principal {
	return c.actor
}

// RiderID returns the rider the order should be handed to.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *AssignRiderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
