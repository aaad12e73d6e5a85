package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the cart lines against the restaurant menu, creates the order in
// pending status, and announces the new order to downstream consumers.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	publisher  StatusPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory for transactional persistence and a
// publisher for the committed status announcement.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory, publisher StatusPublisher) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Menu names and prices are resolved server side from the restaurant the
// order targets; an unknown menu item fails the whole placement. The order
// is persisted in pending status within a transaction, and the pending
// announcement goes out only after the commit.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.NewAccessPolicy().Authorize(cmd.Actor(), services.OpPlaceOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		menuItem, found := rest.FindMenuItem(line.MenuItemID)
		if !found {
			return errs.NewObjectNotFoundError("menu item", line.MenuItemID)
		}

		item, err := order.NewItem(menuItem.ID, menuItem.Name, menuItem.Price, line.Quantity)
		if err != nil {
			return err
		}

		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), rest.ID(), items, time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChange(ctx, h.publisher, newOrder)
	return nil
}
