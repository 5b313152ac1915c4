package queries_test

import (
	"context"

	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOccupancyReader struct{ mock.Mock }

func (m *MockOccupancyReader) PendingCount() int { return m.Called().Int(0) }
func (m *MockOccupancyReader) Capacity() int     { return m.Called().Int(0) }
func (m *MockOccupancyReader) IsClosed() bool    { return m.Called().Bool(0) }

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
