// Package stagingbuffer provides the in-memory staging area between order
// producers and couriers.
//
// The buffer is a monitor: one mutex guards the contents and two condition
// variables (notFull, notEmpty) park inserters and withdrawers. Every wait
// re-checks its condition in a loop, so spurious or shared wakeups are
// harmless. Context cancellation is turned into a broadcast on the
// relevant condition through context.AfterFunc, which lets a parked caller
// observe ctx.Err() without polling.
//
// Priority is recomputed on every withdrawal with a linear scan over the
// contents, which are kept in insertion order. Capacity is expected to be
// small.
package stagingbuffer

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/core/domain/services"
	"speedfast/internal/core/ports"
	"speedfast/internal/pkg/errs"
)

// MaxCapacity bounds New. Withdraw scans every staged order, so the buffer
// is meant to stay small.
const MaxCapacity = 10_000

var _ ports.OrderBuffer = (*Buffer)(nil)

// Buffer implements ports.OrderBuffer.
type Buffer struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	// orders is kept in insertion order; FindMostUrgent relies on it for FIFO ties
	orders   []*order.Order
	capacity int
	closed   bool

	// pending mirrors len(orders) for lock-free reads by observers
	pending atomic.Int64

	dispatcher services.OrderDispatcher
}

// New returns an open, empty buffer holding at most capacity orders.
func New(capacity int) (*Buffer, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, errs.NewValueIsOutOfRangeError("capacity", capacity, 1, MaxCapacity)
	}

	b := &Buffer{
		orders:     make([]*order.Order, 0, capacity),
		capacity:   capacity,
		dispatcher: services.NewOrderDispatcher(),
	}
	b.notFull = sync.NewCond(&b.mu)
	b.notEmpty = sync.NewCond(&b.mu)

	return b, nil
}

// Insert stages a Pending order, blocking while the buffer is full.
func (b *Buffer) Insert(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Pending {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order #%d is %s, only Pending orders can be staged", o.ID(), o.Status()))
	}

	stop := b.wakeOnDone(ctx, b.notFull)
	defer stop()

	b.mu.Lock()
	defer b.mu.Unlock()

	for len(b.orders) >= b.capacity && !b.closed {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.notFull.Wait()
	}

	if b.closed {
		return ports.ErrBufferClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.contains(o) {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order #%d is already staged", o.ID()))
	}

	b.orders = append(b.orders, o)
	b.pending.Store(int64(len(b.orders)))
	b.notEmpty.Broadcast()

	return nil
}

// Withdraw removes the most urgent order, blocking while the buffer is
// empty and still open.
func (b *Buffer) Withdraw(ctx context.Context) (*order.Order, error) {
	stop := b.wakeOnDone(ctx, b.notEmpty)
	defer stop()

	b.mu.Lock()
	defer b.mu.Unlock()

	for len(b.orders) == 0 && !b.closed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.notEmpty.Wait()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(b.orders) == 0 {
		return nil, ports.ErrBufferDrained
	}

	idx, err := b.dispatcher.FindMostUrgent(b.orders)
	if err != nil {
		return nil, err
	}

	o := b.orders[idx]
	b.orders = slices.Delete(b.orders, idx, idx+1)
	b.pending.Store(int64(len(b.orders)))
	b.notFull.Broadcast()

	return o, nil
}

// PendingCount never takes the lock. The value may be stale by the time
// the caller looks at it.
func (b *Buffer) PendingCount() int {
	return int(b.pending.Load())
}

func (b *Buffer) Capacity() int {
	return b.capacity
}

// Close stops inserts and wakes every parked caller. Withdrawals keep
// draining the remaining orders.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	b.notFull.Broadcast()
	b.notEmpty.Broadcast()
}

// IsClosed reports whether Close was called. Remaining orders may still be
// waiting to be withdrawn.
func (b *Buffer) IsClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// wakeOnDone broadcasts on cond once ctx is done. The broadcast happens
// under the lock so it cannot slip in between a waiter's ctx check and its
// call to Wait.
func (b *Buffer) wakeOnDone(ctx context.Context, cond *sync.Cond) func() bool {
	return context.AfterFunc(ctx, func() {
		b.mu.Lock()
		cond.Broadcast()
		b.mu.Unlock()
	})
}

// contains must be called with mu held.
func (b *Buffer) contains(o *order.Order) bool {
	return slices.ContainsFunc(b.orders, o.IsEqual)
}
