package ports

import (
	"context"
	"time"

	"speedfast/internal/core/domain/model/order"
)

// DeliveryLedger is the append-only record of completed orders.
type DeliveryLedger interface {
	// RecordDelivery appends a Delivered order. Each order is recorded at most once.
	RecordDelivery(ctx context.Context, o *order.Order) error

	// Get returns the record of one order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, orderID int64) (DeliveryRecord, error)

	// Report returns a snapshot that never interleaves with concurrent appends.
	Report(ctx context.Context) (DeliveryReport, error)
}

// DeliveryRecord is an immutable copy of a delivered order as recorded.
type DeliveryRecord struct {
	OrderID    int64
	Kind       order.Kind
	Priority   order.Priority
	Status     order.Status
	Courier    string
	Summary    string
	RecordedAt time.Time
}

// DeliveryReport lists records in the order they were appended.
type DeliveryReport struct {
	Records []DeliveryRecord
	Total   int
}
