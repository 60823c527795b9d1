package kafka

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

type mockOrderRepository struct{ mock.Mock }

func (m *mockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) GetByTrackingID(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*order.Order, error) {
	args := m.Called(ctx, trackingID)
	return nil, args.Error(1)
}

type mockOutboxRepository struct{ mock.Mock }

func (m *mockOutboxRepository) Add(ctx context.Context, message *ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockOutboxRepository) FetchPending(
	ctx context.Context,
	limit int,
) ([]*ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	return nil, args.Error(1)
}

func (m *mockOutboxRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	args := m.Called(ctx, id, sentAt)
	return args.Error(0)
}

type mockUoW struct{ mock.Mock }

func (m *mockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *mockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type mockUoWFactory struct{ mock.Mock }

func (m *mockUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	orderID := kernel.NewOrderID()
	item, err := order.RestoreItem(1, orderID, kernel.NewProductID(), "Pizza Margherita", price, 1, price)
	require.NoError(t, err)

	address, err := order.NewAddress("Baker Street 221b", "London", "NW1 6XE")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              orderID,
		CustomerID:      kernel.NewCustomerID(),
		RestaurantID:    kernel.NewRestaurantID(),
		TrackingID:      kernel.NewTrackingID(),
		DeliveryAddress: address,
		Price:           price,
		Items:           []*order.Item{item},
		Status:          status,
	})
	require.NoError(t, err)
	return o
}

func testConsumer(factory commands.OrderUoWFactory) *Consumer {
	service := services.NewOrderService()
	payHandler := commands.NewPayOrderCommandHandler(factory, service)
	approveHandler := commands.NewApproveOrderCommandHandler(factory, service)
	cancelPaymentHandler := commands.NewCancelOrderPaymentCommandHandler(factory, service)
	cancelHandler := commands.NewCancelOrderCommandHandler(factory, service)

	return &Consumer{
		log:                       slog.Default(),
		paymentResponseTopic:      "payment-response",
		approvalResponseTopic:     "restaurant-approval-response",
		payHandler:                &payHandler,
		approveHandler:            &approveHandler,
		cancelOrderPaymentHandler: &cancelPaymentHandler,
		cancelOrderHandler:        &cancelHandler,
	}
}

func TestConsumer_HandlePaymentCompleted(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, order.Pending)

	orderRepo := new(mockOrderRepository)
	outboxRepo := new(mockOutboxRepository)
	uow := new(mockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("*ports.OutboxMessage")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(mockUoWFactory)
	factory.On("Create").Return(uow).Once()

	consumer := testConsumer(factory)
	record := &kgo.Record{
		Topic: "payment-response",
		Value: []byte(`{"order_id":"` + o.ID().String() + `","payment_status":"completed"}`),
	}

	require.NoError(t, consumer.handleRecord(ctx, record))
	assert.Equal(t, order.Paid, o.Status())
	uow.AssertExpectations(t)
}

func TestConsumer_HandleApprovalRejected(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, order.Paid)

	orderRepo := new(mockOrderRepository)
	outboxRepo := new(mockOutboxRepository)
	uow := new(mockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("*ports.OutboxMessage")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(mockUoWFactory)
	factory.On("Create").Return(uow).Once()

	consumer := testConsumer(factory)
	record := &kgo.Record{
		Topic: "restaurant-approval-response",
		Value: []byte(`{"order_id":"` + o.ID().String() +
			`","order_approval_status":"rejected","failure_messages":["out of stock"]}`),
	}

	require.NoError(t, consumer.handleRecord(ctx, record))
	assert.Equal(t, order.Canceling, o.Status())
	assert.Equal(t, []string{"out of stock"}, o.FailureMessages())
	uow.AssertExpectations(t)
}

func TestConsumer_DropsStaleResponse(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, order.Approved)

	orderRepo := new(mockOrderRepository)
	uow := new(mockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(mockUoWFactory)
	factory.On("Create").Return(uow).Once()

	consumer := testConsumer(factory)
	record := &kgo.Record{
		Topic: "payment-response",
		Value: []byte(`{"order_id":"` + o.ID().String() + `","payment_status":"completed"}`),
	}

	require.NoError(t, consumer.handleRecord(ctx, record))
	assert.Equal(t, order.Approved, o.Status())
}

func TestConsumer_RejectsMalformedInput(t *testing.T) {
	ctx := t.Context()
	consumer := testConsumer(new(mockUoWFactory))

	t.Run("should fail on invalid json", func(t *testing.T) {
		err := consumer.handleRecord(ctx, &kgo.Record{
			Topic: "payment-response",
			Value: []byte("not json"),
		})
		assert.Error(t, err)
	})

	t.Run("should fail on unknown payment status", func(t *testing.T) {
		err := consumer.handleRecord(ctx, &kgo.Record{
			Topic: "payment-response",
			Value: []byte(`{"order_id":"` + kernel.NewOrderID().String() + `","payment_status":"maybe"}`),
		})
		assert.Error(t, err)
	})

	t.Run("should fail on unexpected topic", func(t *testing.T) {
		err := consumer.handleRecord(ctx, &kgo.Record{Topic: "other"})
		assert.Error(t, err)
	})
}
