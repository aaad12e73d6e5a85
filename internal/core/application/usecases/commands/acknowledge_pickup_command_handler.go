package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// AcknowledgePickupCommandHandler records that a customer dismissed a pickup
// notification, which stops the notification watcher from raising it again.
type AcknowledgePickupCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcknowledgePickupCommandHandler creates a handler for notification
// acknowledgements.
func NewAcknowledgePickupCommandHandler(uowFactory OrderUoWFactory) AcknowledgePickupCommandHandler {
	return AcknowledgePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement. Acknowledging an order that no
// longer exists is a no-op: the notification the customer dismissed may
// reference an order an admin has since removed, and there is nothing left
// to flag.
func (h AcknowledgePickupCommandHandler) Handle(ctx context.Context, cmd AcknowledgePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.NewAccessPolicy().Authorize(cmd.Actor(), services.OpAcknowledgePickup); err != nil {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = requireOwnOrder(cmd.Actor(), o, services.OpAcknowledgePickup.String()); err != nil {
		return err
	}

	if err = o.AcknowledgePickup(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
