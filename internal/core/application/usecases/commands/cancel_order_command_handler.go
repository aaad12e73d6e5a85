package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation for both roles that
// may request it. The role decides the ownership check: a customer must own
// the order and catch it before the kitchen starts, a manager must own the
// restaurant and catch it before a rider takes it.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  StatusPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher StatusPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.NewAccessPolicy().Authorize(cmd.Actor(), services.OpCancelOrder); err != nil {
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

	if err = h.authorizeCancel(cmd.Actor(), o); err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
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

// authorizeCancel applies the per-role ownership rules. A customer's window
// closes once the kitchen starts making the order; from then on cancellation
// is the restaurant's call.
func (h CancelOrderCommandHandler) authorizeCancel(actor *principal.Principal, o *order.Order) error {
	operation := services.OpCancelOrder.String()

	switch actor.Role() {
	case principal.RoleManager:
		return requireManagedOrder(actor, o, operation)
	case principal.RoleCustomer:
		if err := requireOwnOrder(actor, o, operation); err != nil {
			return err
		}
		if o.Status() != order.Pending {
			return errs.NewAuthorizationError(actor.ID().String(), operation)
		}
		return nil
	default:
		return errs.NewAuthorizationError(actor.ID().String(), operation)
	}
}
