package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// AssignRiderCommandHandler orchestrates handing a ready order to a rider.
// Loads the rider principal and their current workload, then delegates the
// assignment rules to the RiderAssigner domain service.
type AssignRiderCommandHandler struct {
	uowFactory AssignRiderUoWFactory
	publisher  StatusPublisher
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory AssignRiderUoWFactory, publisher StatusPublisher) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command. An unknown rider id surfaces as
// an InvalidRiderError rather than a bare not-found, so callers can tell a
// bad assignment request apart from a missing order.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.NewAccessPolicy().Authorize(cmd.Actor(), services.OpAssignRider); err != nil {
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

	if err = requireManagedOrder(cmd.Actor(), o, services.OpAssignRider.String()); err != nil {
		return err
	}

	rider, err := uow.PrincipalRepository().Get(ctx, cmd.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewInvalidRiderErrorWithCause(cmd.RiderID().String(), err)
	}
	if err != nil {
		return err
	}

	activeOrders, err := orderRepo.GetActiveByRider(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = services.NewRiderAssigner().Assign(o, rider, activeOrders); err != nil {
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
