package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// AdvanceOrderCommandHandler handles the kitchen-side status transitions.
// A manager may only advance orders belonging to their own restaurant, and
// cancellation from here follows the same legality rule as any cancel.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  StatusPublisher
}

// NewAdvanceOrderCommandHandler creates a handler for kitchen transitions.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, publisher StatusPublisher) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the advance command. The order is loaded and transitioned
// within a transaction; the conditional update detects a concurrent
// transition and surfaces it as a StaleStateError instead of overwriting it.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	operation := services.OpAdvanceOrder
	if cmd.Target() == order.Cancelled {
		operation = services.OpCancelOrder
	}

	if err := services.NewAccessPolicy().Authorize(cmd.Actor(), operation); err != nil {
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

	if err = requireManagedOrder(cmd.Actor(), o, operation.String()); err != nil {
		return err
	}

	if cmd.Target() == order.Cancelled {
		err = o.Cancel()
	} else {
		err = o.Advance(cmd.Target())
	}
	if err != nil {
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
