package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// DeclinePickupCommandHandler handles a rider handing back an assigned
// order. The decline clears the rider binding, so the order shows up as
// assignable again, to any rider including the one who declined.
type DeclinePickupCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  StatusPublisher
}

// NewDeclinePickupCommandHandler creates a handler for pickup declines.
func NewDeclinePickupCommandHandler(uowFactory OrderUoWFactory, publisher StatusPublisher) DeclinePickupCommandHandler {
	return DeclinePickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the decline. Only the rider the order is bound to may
// decline it.
func (h DeclinePickupCommandHandler) Handle(ctx context.Context, cmd DeclinePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.NewAccessPolicy().Authorize(cmd.Actor(), services.OpDeclinePickup); err != nil {
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

	if err = requireAssignedRider(cmd.Actor(), o, services.OpDeclinePickup.String()); err != nil {
		return err
	}

	if err = o.DeclinePickup(); err != nil {
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
