package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

func TestApproveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.Paid)
	cmd, err := commands.NewApproveOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, services.NewOrderService())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Approved, o.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, order.Pending)
	cmd, err := commands.NewApproveOrderCommand(o.ID())
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

	h := commands.NewApproveOrderCommandHandler(factory, services.NewOrderService())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	assert.Equal(t, order.Pending, o.Status())
	uow.AssertExpectations(t)
}
