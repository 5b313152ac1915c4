// Package ledger provides the in-memory delivery ledger: the append-only
// record of orders that reached the Delivered state.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/core/ports"
	"speedfast/internal/pkg/errs"
)

var _ ports.DeliveryLedger = (*Ledger)(nil)

// Ledger implements ports.DeliveryLedger. Appends, lookups and report
// generation share one mutex, so a report never interleaves with an append.
type Ledger struct {
	mu      sync.Mutex
	records []ports.DeliveryRecord
	index   map[int64]int
	now     func() time.Time
}

func New() *Ledger {
	return NewWithClock(time.Now)
}

// NewWithClock lets tests pin RecordedAt.
func NewWithClock(now func() time.Time) *Ledger {
	return &Ledger{
		index: make(map[int64]int),
		now:   now,
	}
}

// RecordDelivery copies the order into the ledger. Only Delivered orders
// are accepted and each order id is accepted once.
func (l *Ledger) RecordDelivery(ctx context.Context, o *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Delivered {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order #%d is %s, only Delivered orders can be recorded", o.ID(), o.Status()))
	}

	record := ports.DeliveryRecord{
		OrderID:  o.ID(),
		Kind:     o.Kind(),
		Priority: o.Priority(),
		Status:   o.Status(),
		Courier:  o.Courier(),
		Summary:  o.ShortSummary(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.index[record.OrderID]; exists {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order #%d is already recorded", record.OrderID))
	}

	record.RecordedAt = l.now()
	l.index[record.OrderID] = len(l.records)
	l.records = append(l.records, record)

	return nil
}

func (l *Ledger) Get(ctx context.Context, orderID int64) (ports.DeliveryRecord, error) {
	if err := ctx.Err(); err != nil {
		return ports.DeliveryRecord{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[orderID]
	if !ok {
		return ports.DeliveryRecord{}, errs.NewObjectNotFoundError("order", orderID)
	}
	return l.records[i], nil
}

func (l *Ledger) Report(ctx context.Context) (ports.DeliveryReport, error) {
	if err := ctx.Err(); err != nil {
		return ports.DeliveryReport{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records := make([]ports.DeliveryRecord, len(l.records))
	copy(records, l.records)

	return ports.DeliveryReport{
		Records: records,
		Total:   len(records),
	}, nil
}
