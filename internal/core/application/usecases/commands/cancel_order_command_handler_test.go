package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectCancelFlow(ctx context.Context, orderRepo *MockOrderRepository, uow *MockUoW, testOrder *order.Order, committed bool) {
	calls := []*mock.Call{
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
	}
	if committed {
		calls = append(calls,
			orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
	}
	calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
	mock.InOrder(calls...)
}

func TestCancelOrderCommandHandler_Handle_CustomerCancelsPending(t *testing.T) {
	ctx := t.Context()

	customer := newCustomer(t)
	testOrder := newTestOrder(t, customer.ID(), kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectCancelFlow(ctx, orderRepo, uow, testOrder, true)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CustomerTooLate(t *testing.T) {
	ctx := t.Context()

	customer := newCustomer(t)
	testOrder := newTestOrder(t, customer.ID(), kernel.NewUUID())
	require.NoError(t, testOrder.Advance(order.Making))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectCancelFlow(ctx, orderRepo, uow, testOrder, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	assert.Equal(t, order.Making, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ForeignCustomerDenied(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), newCustomer(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectCancelFlow(ctx, orderRepo, uow, testOrder, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	assert.Equal(t, order.Pending, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ManagerCancelsMaking(t *testing.T) {
	ctx := t.Context()

	restaurantID := kernel.NewUUID()
	manager := newManager(t, restaurantID)
	testOrder := newTestOrder(t, kernel.NewUUID(), restaurantID)
	require.NoError(t, testOrder.Advance(order.Making))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), manager)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectCancelFlow(ctx, orderRepo, uow, testOrder, true)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ManagerForeignRestaurant(t *testing.T) {
	ctx := t.Context()

	manager := newManager(t, kernel.NewUUID())
	testOrder := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), manager)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectCancelFlow(ctx, orderRepo, uow, testOrder, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
}

func TestCancelOrderCommandHandler_Handle_DeliveringCannotBeCancelled(t *testing.T) {
	ctx := t.Context()

	restaurantID := kernel.NewUUID()
	manager := newManager(t, restaurantID)
	testOrder := advanceToReady(t, newTestOrder(t, kernel.NewUUID(), restaurantID))
	require.NoError(t, testOrder.AssignRider(kernel.NewUUID()))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), manager)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectCancelFlow(ctx, orderRepo, uow, testOrder, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Delivering, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_RiderDenied(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), newRider(t))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelOrderCommandHandler_Handle_AdminDenied(t *testing.T) {
	ctx := t.Context()

	admin, err := principal.NewPrincipal(kernel.NewUUID(), principal.RoleAdmin, "Admin")
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), admin)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	factory.AssertNotCalled(t, "Create")
}
