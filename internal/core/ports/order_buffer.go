package ports

import (
	"context"
	"errors"

	"speedfast/internal/core/domain/model/order"
)

var (
	// ErrBufferClosed is returned by Insert once the buffer stopped accepting orders.
	ErrBufferClosed = errors.New("staging buffer is closed")

	// ErrBufferDrained is returned by Withdraw when the buffer is closed and
	// empty: no more orders will ever arrive.
	ErrBufferDrained = errors.New("staging buffer is closed and drained")
)

// OrderBuffer is the capacity-bounded, priority-ordered staging area shared
// by producers and couriers.
type OrderBuffer interface {
	// Insert blocks while the buffer is full. It returns ctx.Err() if the
	// context ends first (nothing is inserted) and ErrBufferClosed after Close.
	Insert(ctx context.Context, o *order.Order) error

	// Withdraw blocks while the buffer is empty and open, then removes and
	// returns the most urgent order (FIFO within a priority class). It
	// returns ErrBufferDrained once closed and empty, or ctx.Err().
	Withdraw(ctx context.Context) (*order.Order, error)

	// PendingCount is an advisory, non-blocking occupancy snapshot.
	PendingCount() int

	// Capacity is fixed at construction.
	Capacity() int

	// Close stops inserts and wakes every waiter. Safe to call more than once.
	Close()
}
