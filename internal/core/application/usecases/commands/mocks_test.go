package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"replenish/internal/core/application/usecases/commands"
	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/core/ports"

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

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindDueForAutoClose(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) EligibleManagers(ctx context.Context, branchID kernel.UUID) ([]kernel.UUID, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockAssignmentRepository) IsEligible(ctx context.Context, managerID, branchID kernel.UUID) (bool, error) {
	args := m.Called(ctx, managerID, branchID)
	return args.Bool(0), args.Error(1)
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

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// RecordingNotifier captures emitted events synchronously so tests can assert
// on the exactly-one-event-per-transition rule.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []ports.Event
}

func (n *RecordingNotifier) Emit(event ports.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *RecordingNotifier) Events() []ports.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Event(nil), n.events...)
}

// newUnderReviewOrder builds a fresh order with two requested lines.
func newUnderReviewOrder(id, requesterID, branchID kernel.UUID) *order.Order {
	itemA, _ := order.NewItem("SKU-1", 50, 50.0)
	itemB, _ := order.NewItem("SKU-2", 10, 2.5)
	o, _ := order.NewOrder(id, requesterID, branchID,
		[]*order.Item{itemA, itemB}, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	return o
}

// restoreReceivedOrder builds an order in ConfirmOrderReceived with the given
// auto-close deadline, as the sweep would load it.
func restoreReceivedOrder(id, requesterID, branchID kernel.UUID, autoCloseAt time.Time) *order.Order {
	received := autoCloseAt.Add(-8 * time.Hour)
	o, _ := order.RestoreOrder(order.RestoreArgs{
		ID:          id,
		Number:      "RO-20260302-TEST0000",
		RequesterID: requesterID,
		BranchID:    branchID,
		Status:      order.ConfirmOrderReceived,
		Items:       []*order.Item{order.RestoreItem("SKU-1", 50, nil, 50.0, 2500.0)},
		CreatedAt:   received.Add(-72 * time.Hour),
		ReceivedAt:  &received,
		AutoCloseAt: &autoCloseAt,
	})
	return o
}
