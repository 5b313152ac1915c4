package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/core/domain/services"
	"speedfast/internal/core/ports"
	"speedfast/internal/pkg/pause"
)

var (
	// ErrNoOrderFound means the buffer is closed and drained.
	ErrNoOrderFound = errors.New("no order found")

	// ErrDeliveryAborted is joined with the context error when a delivery is
	// interrupted. The order is left Cancelled and is not recorded.
	ErrDeliveryAborted = errors.New("delivery aborted")
)

// DispatchOrderResult describes one completed delivery.
type DispatchOrderResult struct {
	Order  *order.Order
	Report order.ProcessingReport
	Took   time.Duration
}

// DispatchOrderCommandHandler runs one worker iteration: withdraw the most
// urgent order, dispatch it to the courier, process it, simulate the trip,
// deliver it and hand it to the ledger.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(buffer, ledger, pause.Between(2*time.Second, 5*time.Second))
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    // buffer drained, stop the worker
//	case errors.Is(err, ErrDeliveryAborted):
//	    // the order was cancelled mid-delivery
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchOrderCommandHandler struct {
	buffer     ports.OrderBuffer
	ledger     ports.DeliveryLedger
	dispatcher services.OrderDispatcher
	delay      func() time.Duration
}

// NewDispatchOrderCommandHandler creates the handler. delay is consulted
// once per delivery; nil means deliveries take no time.
func NewDispatchOrderCommandHandler(
	buffer ports.OrderBuffer,
	ledger ports.DeliveryLedger,
	delay func() time.Duration,
) DispatchOrderCommandHandler {
	if delay == nil {
		delay = func() time.Duration { return 0 }
	}

	return DispatchOrderCommandHandler{
		buffer:     buffer,
		ledger:     ledger,
		dispatcher: services.NewOrderDispatcher(),
		delay:      delay,
	}
}

func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) (DispatchOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchOrderResult{}, err
	}

	o, err := h.buffer.Withdraw(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrBufferDrained) {
			return DispatchOrderResult{}, ErrNoOrderFound
		}
		return DispatchOrderResult{}, err
	}

	if err = h.dispatcher.Dispatch(o, cmd.Courier()); err != nil {
		return DispatchOrderResult{}, err
	}

	report, err := o.Process()
	if err != nil {
		return DispatchOrderResult{}, err
	}

	took := h.delay()
	if err = pause.For(ctx, took); err != nil {
		return DispatchOrderResult{}, h.abort(o, err)
	}

	if err = h.dispatcher.Deliver(o); err != nil {
		return DispatchOrderResult{}, err
	}

	// A Delivered order is recorded even if ctx ends now.
	if err = h.ledger.RecordDelivery(context.WithoutCancel(ctx), o); err != nil {
		return DispatchOrderResult{}, fmt.Errorf("record order #%d: %w", o.ID(), err)
	}

	return DispatchOrderResult{
		Order:  o,
		Report: report,
		Took:   took,
	}, nil
}

func (h DispatchOrderCommandHandler) abort(o *order.Order, cause error) error {
	if err := h.dispatcher.Abandon(o); err != nil {
		return errors.Join(ErrDeliveryAborted, cause, err)
	}
	return fmt.Errorf("order #%d: %w", o.ID(), errors.Join(ErrDeliveryAborted, cause))
}
