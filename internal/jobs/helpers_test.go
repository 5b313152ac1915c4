package jobs_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"speedfast/internal/adapters/out/memory/ledger"
	"speedfast/internal/adapters/out/memory/stagingbuffer"
	"speedfast/internal/core/application/usecases/commands"
	"speedfast/internal/core/domain/model/courier"
	"speedfast/internal/core/domain/model/kernel"
	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/core/ports"
	"speedfast/internal/jobs"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type pipeline struct {
	buffer   *stagingbuffer.Buffer
	ledger   *ledger.Ledger
	create   commands.CreateOrderCommandHandler
	dispatch commands.DispatchOrderCommandHandler
}

func newPipeline(t *testing.T, capacity int, delay func() time.Duration) *pipeline {
	t.Helper()
	buffer, err := stagingbuffer.New(capacity)
	require.NoError(t, err)
	l := ledger.New()

	return &pipeline{
		buffer:   buffer,
		ledger:   l,
		create:   commands.NewCreateOrderCommandHandler(buffer, kernel.NewSequence(1000)),
		dispatch: commands.NewDispatchOrderCommandHandler(buffer, l, delay),
	}
}

// seedDemoOrders stages the six reference orders 1001..1006.
func (p *pipeline) seedDemoOrders(t *testing.T) {
	t.Helper()
	demo := []struct {
		kind     order.Kind
		priority order.Priority
		address  string
		distance float64
		weight   float64
	}{
		{order.Food, order.High, "Av. Las Rosas 1470", 2, 0},
		{order.Express, order.Medium, "Av. Manuel Rodriguez 780", 5, 0},
		{order.Food, order.High, "Los Carrera 1890", 4, 0},
		{order.Parcel, order.Low, "Av Paicavi 1250", 6, 3},
		{order.Express, order.Medium, "Av Ohiggins 940", 3, 0},
		{order.Food, order.High, "San Martin 520", 1, 0},
	}
	for _, d := range demo {
		cmd, err := commands.NewCreateOrderCommand(d.kind, d.priority, d.address, d.distance, d.weight)
		require.NoError(t, err)
		_, err = p.create.Handle(t.Context(), cmd)
		require.NoError(t, err)
	}
}

// seedPriorities stages one order per priority, in the given order. Ids
// start at 1001.
func (p *pipeline) seedPriorities(t *testing.T, priorities ...order.Priority) {
	t.Helper()
	for i, priority := range priorities {
		kind, weight := order.Food, 0.0
		switch priority {
		case order.Medium:
			kind = order.Express
		case order.Low:
			kind, weight = order.Parcel, 2
		}
		cmd, err := commands.NewCreateOrderCommand(kind, priority, fmt.Sprintf("%d Dispatch Avenue", i+1), float64(i+1), weight)
		require.NoError(t, err)
		_, err = p.create.Handle(t.Context(), cmd)
		require.NoError(t, err)
	}
}

func (p *pipeline) workers(t *testing.T, names ...string) []*jobs.DispatchWorker {
	t.Helper()
	workers := make([]*jobs.DispatchWorker, 0, len(names))
	for _, name := range names {
		c, err := courier.NewCourier(kernel.NewUUID(), name)
		require.NoError(t, err)
		workers = append(workers, jobs.NewDispatchWorker(p.dispatch, c, discardLogger()))
	}
	return workers
}

var errLedgerUnavailable = errors.New("ledger unavailable")

// flakyLedger rejects the first recording and forwards the rest.
type flakyLedger struct {
	ports.DeliveryLedger
	calls atomic.Int64
}

func (l *flakyLedger) RecordDelivery(ctx context.Context, o *order.Order) error {
	if l.calls.Add(1) == 1 {
		return errLedgerUnavailable
	}
	return l.DeliveryLedger.RecordDelivery(ctx, o)
}

// cancellingLedger cancels the worker context, then fails with an error
// unrelated to the cancellation.
type cancellingLedger struct {
	ports.DeliveryLedger
	cancel context.CancelFunc
}

func (l *cancellingLedger) RecordDelivery(context.Context, *order.Order) error {
	l.cancel()
	return errLedgerUnavailable
}
