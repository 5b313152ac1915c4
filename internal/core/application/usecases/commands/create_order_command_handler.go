package commands

import (
	"context"

	"speedfast/internal/core/domain/model/kernel"
	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/core/ports"
)

// CreateOrderCommandHandler builds a Pending order and stages it. Insert
// blocks while the buffer is full, so Handle does too.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(buffer, kernel.NewSequence(2000))
//	cmd, _ := NewCreateOrderCommand(order.Food, order.High, "San Martin 520", 1, 0)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	buffer   ports.OrderBuffer
	sequence *kernel.Sequence
}

func NewCreateOrderCommandHandler(buffer ports.OrderBuffer, sequence *kernel.Sequence) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		buffer:   buffer,
		sequence: sequence,
	}
}

// Handle returns the id of the staged order. An id is consumed even when
// the order is never staged (cancelled or closed buffer); ids stay unique
// but may have gaps.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(
		h.sequence.Next(),
		cmd.Kind(),
		cmd.Priority(),
		cmd.Address(),
		cmd.DistanceKm(),
		cmd.WeightKg(),
	)
	if err != nil {
		return 0, err
	}

	if err = h.buffer.Insert(ctx, o); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
