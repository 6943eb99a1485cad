package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSkipOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tester, _ := kernel.NewStaffID(7)
	cmd, _ := commands.NewSkipOrderCommand(42, tester)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("AppendSkip", mock.Anything, int64(42), tester).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSkipOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSkipOrderCommandHandler_Handle_RepeatSkipStillRecorded(t *testing.T) {
	ctx := t.Context()
	tester, _ := kernel.NewStaffID(7)
	cmd, _ := commands.NewSkipOrderCommand(42, tester)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	repo.On("AppendSkip", mock.Anything, int64(42), tester).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewSkipOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}
