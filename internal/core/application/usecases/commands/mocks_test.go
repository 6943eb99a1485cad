package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/exception"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stationlog"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingLast8(
	ctx context.Context, key kernel.TrackingKey,
) (*order.Order, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindIDByCanonical18(
	ctx context.Context, key kernel.TrackingKey,
) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ExistsByExternalID(
	ctx context.Context, externalOrderID string,
) (bool, error) {
	args := m.Called(ctx, externalOrderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ClaimTester(
	ctx context.Context, orderID int64, staffID kernel.StaffID,
) error {
	args := m.Called(ctx, orderID, staffID)
	return args.Error(0)
}

func (m *MockOrderRepository) AppendSkip(
	ctx context.Context, orderID int64, staffID kernel.StaffID,
) error {
	args := m.Called(ctx, orderID, staffID)
	return args.Error(0)
}

func (m *MockOrderRepository) AssignFields(
	ctx context.Context, orderID int64, patch ports.AssignmentPatch,
) error {
	args := m.Called(ctx, orderID, patch)
	return args.Error(0)
}

func (m *MockOrderRepository) SetMissingParts(
	ctx context.Context, orderID int64, reason string,
) error {
	args := m.Called(ctx, orderID, reason)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkShipped(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(
	ctx context.Context, ids []int64,
) ([]ports.DeleteOutcome, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.DeleteOutcome), args.Error(1)
}

func (m *MockOrderRepository) NormalizeStatuses(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockStationLogRepository struct{ mock.Mock }

func (m *MockStationLogRepository) Record(ctx context.Context, entry *stationlog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStationLogRepository) FindUnconsumedByTrackingSuffix(
	ctx context.Context, kind stationlog.Kind, key kernel.TrackingKey,
) ([]*stationlog.Entry, error) {
	args := m.Called(ctx, kind, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stationlog.Entry), args.Error(1)
}

func (m *MockStationLogRepository) MarkConsumed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStationLogRepository) FindTechByTracking(
	ctx context.Context, key kernel.TrackingKey, operatorID *kernel.StaffID,
) ([]*stationlog.Entry, error) {
	args := m.Called(ctx, key, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stationlog.Entry), args.Error(1)
}

func (m *MockStationLogRepository) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStationLogRepository) DeleteTechByTracking(
	ctx context.Context, key kernel.TrackingKey,
) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStationLogRepository) ListTechSerials(
	ctx context.Context, key kernel.TrackingKey,
) ([]string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStationLogRepository) HasPackEvent(
	ctx context.Context, key kernel.TrackingKey,
) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockExceptionRepository struct{ mock.Mock }

func (m *MockExceptionRepository) Add(ctx context.Context, row *exception.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockExceptionRepository) ListOpen(ctx context.Context) ([]*exception.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*exception.Row), args.Error(1)
}

func (m *MockExceptionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW serves the order-only, station-only, and three-repo unit of work
// contracts so each test wires only the getters its handler actually uses.
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

func (m *MockUoW) StationLogRepository() ports.StationLogRepository {
	args := m.Called()
	return args.Get(0).(ports.StationLogRepository)
}

func (m *MockUoW) ExceptionRepository() ports.ExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExceptionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStationUoWFactory struct{ mock.Mock }

func (m *MockStationUoWFactory) Create() commands.StationUoW {
	args := m.Called()
	return args.Get(0).(commands.StationUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCacheInvalidator struct{ mock.Mock }

func (m *MockCacheInvalidator) Invalidate(ctx context.Context, tags []string) error {
	args := m.Called(ctx, tags)
	return args.Error(0)
}
