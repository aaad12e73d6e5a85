package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
	ErrTargetStatusIsInvalid = errors.New("target status must be making, ready or cancelled")
)

// AdvanceOrderCommand represents a manager's request to move an order to the
// next preparation status, or to cancel it from the kitchen view. Rider
// transitions have their own commands; this one only covers the statuses a
// manager drives directly.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   *principal.Principal
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order. The target
// must be making, ready, or cancelled.
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	actor *principal.Principal,
	target order.Status,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the manager driving the transition.
func (c AdvanceOrderCommand) Actor() *principal.Principal {
	return c.actor
}

// Target returns the requested target status.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setActor(actor *principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	if target != order.Making && target != order.Ready && target != order.Cancelled {
		return ErrTargetStatusIsInvalid
	}

	c.target = target
	return nil
}
