package services

import (
	"errors"

	"speedfast/internal/core/domain/model/courier"
	"speedfast/internal/core/domain/model/order"
)

// ErrNoOrdersToSelect is returned by FindMostUrgent for an empty slice.
var ErrNoOrdersToSelect = errors.New("no orders to select from")

// OrderDispatcher is a stateless domain service.
//
// Business rules:
//   - The most urgent order is the one with the lowest priority ordinal
//   - Ties within a class go to the earliest position (insertion order)
//   - Only constructed, Pending orders can be dispatched
//   - An order is dispatched by exactly one constructed courier
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	idx, err := dispatcher.FindMostUrgent(staged)
//	o := staged[idx]
//	if err := dispatcher.Dispatch(o, c); err != nil {
//	    // Handle dispatch failure
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// FindMostUrgent returns the index of the order to withdraw next. The slice
// must be in insertion order; the scan is linear and keeps the first order
// of the winning class.
func (d OrderDispatcher) FindMostUrgent(orders []*order.Order) (int, error) {
	if len(orders) == 0 {
		return -1, ErrNoOrdersToSelect
	}

	best := 0
	for i := 1; i < len(orders); i++ {
		if orders[i].Priority().MoreUrgentThan(orders[best].Priority()) {
			best = i
		}
	}

	return best, nil
}

// Dispatch moves the order InTransit and stamps the courier's name on it.
func (d OrderDispatcher) Dispatch(o *order.Order, c *courier.Courier) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}

	return o.Dispatch(c.Name())
}

// Deliver completes an InTransit order.
func (d OrderDispatcher) Deliver(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Deliver()
}

// Abandon cancels an order whose delivery was interrupted. The order is
// not handed back to the staging buffer.
func (d OrderDispatcher) Abandon(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Cancel()
}
