package commands_test

import (
	"context"

	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderBuffer struct{ mock.Mock }

func (m *MockOrderBuffer) Insert(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderBuffer) Withdraw(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderBuffer) PendingCount() int { return m.Called().Int(0) }
func (m *MockOrderBuffer) Capacity() int     { return m.Called().Int(0) }
func (m *MockOrderBuffer) Close()            { m.Called() }

type MockDeliveryLedger struct{ mock.Mock }

func (m *MockDeliveryLedger) RecordDelivery(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDeliveryLedger) Get(ctx context.Context, orderID int64) (ports.DeliveryRecord, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.DeliveryRecord), args.Error(1)
}

func (m *MockDeliveryLedger) Report(ctx context.Context) (ports.DeliveryReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.DeliveryReport), args.Error(1)
}
