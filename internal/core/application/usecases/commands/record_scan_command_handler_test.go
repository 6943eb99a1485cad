package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stationlog"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordScanCommandHandler_Handle_TechScan(t *testing.T) {
	ctx := t.Context()
	operator, _ := kernel.NewStaffID(7)
	cmd, _ := commands.NewRecordScanCommand(
		stationlog.Tech, "1Z999AA10123456784", "SER-A", "SN", operator,
	)

	logRepo := new(MockStationLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StationLogRepository").Return(logRepo).Once(),
		logRepo.On("Record", mock.Anything, mock.AnythingOfType("*stationlog.Entry")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordScanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	logRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordScanCommandHandler_Handle_PackerScanBackfillsTracking(t *testing.T) {
	ctx := t.Context()
	operator, _ := kernel.NewStaffID(9)
	cmd, _ := commands.NewRecordScanCommand(
		stationlog.Packer, "1Z999AA10123456784", "", "", operator,
	)

	matched := restoredOrder(t, 5, "")

	logRepo := new(MockStationLogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StationLogRepository").Return(logRepo).Once()
	logRepo.On("Record", mock.Anything, mock.AnythingOfType("*stationlog.Entry")).
		Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByTrackingLast8", mock.Anything, kernel.NewTrackingKey("1Z999AA10123456784")).
		Return(matched, nil).Once()
	orderRepo.On("Update", mock.Anything, matched).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordScanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "1Z999AA10123456784", matched.TrackingNumber())
	logRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordScanCommandHandler_Handle_PackerScanWithoutOrderStillRecords(t *testing.T) {
	ctx := t.Context()
	operator, _ := kernel.NewStaffID(9)
	cmd, _ := commands.NewRecordScanCommand(
		stationlog.Packer, "1Z999AA10123456784", "", "", operator,
	)

	logRepo := new(MockStationLogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StationLogRepository").Return(logRepo).Once()
	logRepo.On("Record", mock.Anything, mock.AnythingOfType("*stationlog.Entry")).
		Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByTrackingLast8", mock.Anything, kernel.NewTrackingKey("1Z999AA10123456784")).
		Return(nil, errs.NewObjectNotFoundError("tracking", "1Z999AA10123456784")).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordScanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	logRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestRecordScanCommandHandler_Handle_AlreadyTrackedOrderUntouched(t *testing.T) {
	ctx := t.Context()
	operator, _ := kernel.NewStaffID(9)
	cmd, _ := commands.NewRecordScanCommand(
		stationlog.Packer, "1Z999AA10123456784", "", "", operator,
	)

	matched := restoredOrder(t, 5, "9400 1000 0000 1234 5678 94")

	logRepo := new(MockStationLogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StationLogRepository").Return(logRepo).Once()
	logRepo.On("Record", mock.Anything, mock.AnythingOfType("*stationlog.Entry")).
		Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByTrackingLast8", mock.Anything, kernel.NewTrackingKey("1Z999AA10123456784")).
		Return(matched, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordScanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	// No Update expected; the existing tracking number stays.
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, "9400 1000 0000 1234 5678 94", matched.TrackingNumber())
}

func TestNewRecordScanCommand_InvalidKind(t *testing.T) {
	operator, _ := kernel.NewStaffID(7)
	_, err := commands.NewRecordScanCommand(stationlog.Kind("loading-dock"), "1Z999", "", "", operator)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
