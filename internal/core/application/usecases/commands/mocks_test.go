package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Replace(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveSequence(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockHandlerRepository struct{ mock.Mock }

func (m *MockHandlerRepository) Add(ctx context.Context, h *staff.Handler) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHandlerRepository) Update(ctx context.Context, h *staff.Handler) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHandlerRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Handler, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Handler), args.Error(1)
}

func (m *MockHandlerRepository) GetAll(ctx context.Context) ([]*staff.Handler, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.Handler), args.Error(1)
}

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

func (m *MockUoW) LockBoard(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) HandlerRepository() ports.HandlerRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockHandlerUoWFactory struct{ mock.Mock }

func (m *MockHandlerUoWFactory) Create() commands.HandlerUoW {
	args := m.Called()
	return args.Get(0).(commands.HandlerUoW)
}

func newBoardOrder(t *testing.T, seq, ageDays int, zone, product string) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(seq)
	require.NoError(t, err)
	p, err := kernel.NewProduct(product)
	require.NoError(t, err)
	z, err := kernel.NewZone(zone)
	require.NoError(t, err)

	o, err := order.NewOrder(id, p, z, testNow.Add(-time.Duration(ageDays)*24*time.Hour), 1)
	require.NoError(t, err)
	return o
}

func newRosterHandler(t *testing.T, name string, capacity, assigned int) *staff.Handler {
	t.Helper()
	h, err := staff.NewHandler(kernel.NewUUID(), name, "Operations", capacity, assigned)
	require.NoError(t, err)
	return h
}

func orderIDs(orders []*order.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID().String())
	}
	return out
}
