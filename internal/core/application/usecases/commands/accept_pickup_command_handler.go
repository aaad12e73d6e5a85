package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// AcceptPickupCommandHandler handles a rider confirming an order pickup.
// This is the transition that arms the customer's pickup notification.
type AcceptPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  StatusPublisher
}

// NewAcceptPickupCommandHandler creates a handler for pickup confirmations.
func NewAcceptPickupCommandHandler(uowFactory OrderUoWFactory, publisher StatusPublisher) AcceptPickupCommandHandler {
	return AcceptPickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the pickup confirmation. Only the rider the order is
// bound to may confirm it.
func (h AcceptPickupCommandHandler) Handle(ctx context.Context, cmd AcceptPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.NewAccessPolicy().Authorize(cmd.Actor(), services.OpAcceptPickup); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = requireAssignedRider(cmd.Actor(), o, services.OpAcceptPickup.String()); err != nil {
		return err
	}

	if err = o.AcceptPickup(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChange(ctx, h.publisher, o)
	return nil
}
