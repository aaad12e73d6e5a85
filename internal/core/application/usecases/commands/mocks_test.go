package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByRider(ctx context.Context, riderID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetUnacknowledgedPickedUp(
	ctx context.Context, customerID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPrincipalRepository struct{ mock.Mock }

func (m *MockPrincipalRepository) Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principal.Principal), args.Error(1)
}

func (m *MockPrincipalRepository) GetAllRiders(ctx context.Context) ([]*principal.Principal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principal.Principal), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

// MockUoW satisfies every unit of work slice the command handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PrincipalRepository() ports.PrincipalRepository {
	args := m.Called()
	return args.Get(0).(ports.PrincipalRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockAssignRiderUoWFactory struct{ mock.Mock }

func (m *MockAssignRiderUoWFactory) Create() commands.AssignRiderUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignRiderUoW)
}

type MockStatusPublisher struct{ mock.Mock }

func (m *MockStatusPublisher) Publish(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Test fixtures shared across the handler tests.

func newCustomer(t *testing.T) *principal.Principal {
	t.Helper()

	p, err := principal.NewPrincipal(kernel.NewUUID(), principal.RoleCustomer, "Test Customer")
	require.NoError(t, err)
	return p
}

func newManager(t *testing.T, restaurantID kernel.UUID) *principal.Principal {
	t.Helper()

	p, err := principal.NewPrincipal(kernel.NewUUID(), principal.RoleManager, "Test Manager")
	require.NoError(t, err)
	return p.WithRestaurant(restaurantID)
}

func newRider(t *testing.T) *principal.Principal {
	t.Helper()

	p, err := principal.NewPrincipal(kernel.NewUUID(), principal.RoleRider, "Test Rider")
	require.NoError(t, err)
	return p
}

func newTestRestaurant(t *testing.T, id, managerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()

	price, err := kernel.NewMoney(1000)
	require.NoError(t, err)

	rest, err := restaurant.NewRestaurant(id, managerID, "Testaurant",
		[]restaurant.MenuItem{{ID: "burger", Name: "Burger", Price: price}}, 9, 22)
	require.NoError(t, err)
	return rest
}

func newTestOrder(t *testing.T, customerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(1000)
	require.NoError(t, err)
	item, err := order.NewItem("burger", "Burger", price, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID,
		[]order.Item{item}, time.Now())
	require.NoError(t, err)
	return o
}

func advanceToReady(t *testing.T, o *order.Order) *order.Order {
	t.Helper()

	require.NoError(t, o.Advance(order.Making))
	require.NoError(t, o.Advance(order.Ready))
	return o
}
