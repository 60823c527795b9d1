package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingID(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*order.Order, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, message *ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPending(
	ctx context.Context,
	limit int,
) ([]*ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	args := m.Called(ctx, id, sentAt)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRestaurantLookup struct{ mock.Mock }

func (m *MockRestaurantLookup) Get(
	ctx context.Context,
	id kernel.RestaurantID,
	productIDs []kernel.ProductID,
) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

type MockCustomerLookup struct{ mock.Mock }

func (m *MockCustomerLookup) Exists(ctx context.Context, id kernel.CustomerID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	return money
}

// orderInStatus builds a persisted-looking order in the given status for
// handler tests that load the aggregate from the repository mock.
func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	orderID := kernel.NewOrderID()
	item, err := order.RestoreItem(
		1, orderID, kernel.NewProductID(), "Pizza Margherita",
		mustMoney(t, "10.00"), 2, mustMoney(t, "20.00"),
	)
	require.NoError(t, err)

	address, err := order.NewAddress("Baker Street 221b", "London", "NW1 6XE")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              orderID,
		CustomerID:      kernel.NewCustomerID(),
		RestaurantID:    kernel.NewRestaurantID(),
		TrackingID:      kernel.NewTrackingID(),
		DeliveryAddress: address,
		Price:           mustMoney(t, "20.00"),
		Items:           []*order.Item{item},
		Status:          status,
	})
	require.NoError(t, err)
	return o
}
