package commands_test

import (
	"fmt"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tester, _ := kernel.NewStaffID(7)
	patch := commands.TesterPatch(&tester)
	cmd, _ := commands.NewAssignOrderCommand([]int64{5}, patch)

	patched, err := order.RestoreOrder(
		5, "11-09876-54321", "ThinkPad T14 Gen 3", "Refurbished", "LNV-T14-G3",
		"", "unassigned", &tester, nil, nil, "", nil, false, 1, "", "ebay-main",
		time.Now(),
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("AssignFields", mock.Anything, int64(5), patch).Return(nil).Once(),
		repo.On("Get", mock.Anything, int64(5)).Return(patched, nil).Once(),
		repo.On("Update", mock.Anything, patched).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	// The derived status reflects the fresh tester assignment.
	assert.Equal(t, order.Assigned, patched.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// A batch applies the same patch to every order, all in one transaction.
func TestAssignOrderCommandHandler_Handle_BatchAppliesPatchToEachOrder(t *testing.T) {
	ctx := t.Context()
	tester, _ := kernel.NewStaffID(7)
	patch := commands.TesterPatch(&tester)
	cmd, _ := commands.NewAssignOrderCommand([]int64{5, 6}, patch)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	for _, id := range []int64{5, 6} {
		patched, err := order.RestoreOrder(
			id, fmt.Sprintf("11-09876-%05d", id), "ThinkPad T14 Gen 3", "Refurbished",
			"LNV-T14-G3", "", "unassigned", &tester, nil, nil, "", nil, false, 1, "",
			"ebay-main", time.Now(),
		)
		require.NoError(t, err)
		repo.On("AssignFields", mock.Anything, id, patch).Return(nil).Once()
		repo.On("Get", mock.Anything, id).Return(patched, nil).Once()
		repo.On("Update", mock.Anything, patched).Return(nil).Once()
	}
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewAssignOrderCommand_RejectsEmptyPatch(t *testing.T) {
	_, err := commands.NewAssignOrderCommand([]int64{5}, ports.AssignmentPatch{})
	require.Error(t, err)
}

func TestNewAssignOrderCommand_RejectsEmptyIDList(t *testing.T) {
	tester, _ := kernel.NewStaffID(7)
	_, err := commands.NewAssignOrderCommand(nil, commands.TesterPatch(&tester))
	require.Error(t, err)
}

func TestNewAssignOrderCommand_ClearingPatchIsValid(t *testing.T) {
	cmd, err := commands.NewAssignOrderCommand([]int64{5}, commands.PackerPatch(nil))
	require.NoError(t, err)
	assert.True(t, cmd.Patch().SetPacker)
	assert.Nil(t, cmd.Patch().PackerID)
}
