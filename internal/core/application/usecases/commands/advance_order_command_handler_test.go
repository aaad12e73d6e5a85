package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand(t *testing.T) {
	t.Run("should accept making, ready and cancelled", func(t *testing.T) {
		for _, target := range []order.Status{order.Making, order.Ready, order.Cancelled} {
			_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), newManager(t, kernel.NewUUID()), target)
			require.NoError(t, err, "target %s", target)
		}
	})

	t.Run("should reject other targets", func(t *testing.T) {
		for _, target := range []order.Status{order.Unknown, order.Pending, order.Delivering, order.PickedUp} {
			_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), newManager(t, kernel.NewUUID()), target)
			require.ErrorIs(t, err, commands.ErrTargetStatusIsInvalid, "target %s", target)
		}
	})
}

func TestAdvanceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	restaurantID := kernel.NewUUID()
	manager := newManager(t, restaurantID)
	testOrder := newTestOrder(t, kernel.NewUUID(), restaurantID)

	cmd, err := commands.NewAdvanceOrderCommand(testOrder.ID(), manager, order.Making)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockStatusPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderStatusChanged")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Making, testOrder.Status())

	published := publisher.Calls[0].Arguments[1].(ports.OrderStatusChanged)
	assert.Equal(t, order.Making, published.Status)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_CancelTarget(t *testing.T) {
	ctx := t.Context()

	restaurantID := kernel.NewUUID()
	manager := newManager(t, restaurantID)
	testOrder := newTestOrder(t, kernel.NewUUID(), restaurantID)

	cmd, err := commands.NewAdvanceOrderCommand(testOrder.ID(), manager, order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
}

func TestAdvanceOrderCommandHandler_Handle_ForeignRestaurant(t *testing.T) {
	ctx := t.Context()

	manager := newManager(t, kernel.NewUUID())
	testOrder := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID()) // different restaurant

	cmd, err := commands.NewAdvanceOrderCommand(testOrder.ID(), manager, order.Making)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	assert.Equal(t, order.Pending, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAdvanceOrderCommandHandler_Handle_NonManagerDenied(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), newCustomer(t), order.Making)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewAdvanceOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	factory.AssertNotCalled(t, "Create")
}

func TestAdvanceOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()

	restaurantID := kernel.NewUUID()
	manager := newManager(t, restaurantID)
	testOrder := newTestOrder(t, kernel.NewUUID(), restaurantID)

	// pending -> ready skips making
	cmd, err := commands.NewAdvanceOrderCommand(testOrder.ID(), manager, order.Ready)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAdvanceOrderCommandHandler_Handle_StaleState(t *testing.T) {
	ctx := t.Context()

	restaurantID := kernel.NewUUID()
	manager := newManager(t, restaurantID)
	testOrder := newTestOrder(t, kernel.NewUUID(), restaurantID)

	cmd, err := commands.NewAdvanceOrderCommand(testOrder.ID(), manager, order.Making)
	require.NoError(t, err)

	staleErr := errs.NewStaleStateError(testOrder.ID().String(), order.Pending.String())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(staleErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStaleState)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAdvanceOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderCommand(orderID, newManager(t, kernel.NewUUID()), order.Making)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAdvanceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), newManager(t, kernel.NewUUID()), order.Making)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewAdvanceOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
