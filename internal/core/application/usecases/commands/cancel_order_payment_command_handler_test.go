package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

func TestCancelOrderPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.Paid)
	cmd, err := commands.NewCancelOrderPaymentCommand(o.ID(), []string{"out of stock"})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
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

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderPaymentCommandHandler(factory, services.NewOrderService())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceling, o.Status())
	assert.Equal(t, []string{"out of stock"}, o.FailureMessages())

	staged := outboxRepo.Calls[0].Arguments.Get(1).(*ports.OutboxMessage)
	assert.Equal(t, string(order.EventTypeCancelling), staged.EventType)
	assert.Contains(t, string(staged.Payload), "out of stock")

	orderRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderPaymentCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.Pending)
	cmd, err := commands.NewCancelOrderPaymentCommand(o.ID(), []string{"out of stock"})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderPaymentCommandHandler(factory, services.NewOrderService())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	assert.Nil(t, o.FailureMessages())
	uow.AssertExpectations(t)
}
