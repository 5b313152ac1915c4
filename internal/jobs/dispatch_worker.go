package jobs

import (
	"context"
	"errors"
	"log/slog"

	"speedfast/internal/core/application/usecases/commands"
	"speedfast/internal/core/domain/model/courier"
)

// DispatchWorker is one courier repeatedly taking the most urgent staged
// order through to delivery.
type DispatchWorker struct {
	handler commands.DispatchOrderCommandHandler
	courier *courier.Courier
	logger  *slog.Logger
}

func NewDispatchWorker(
	handler commands.DispatchOrderCommandHandler,
	c *courier.Courier,
	logger *slog.Logger,
) *DispatchWorker {
	return &DispatchWorker{
		handler: handler,
		courier: c,
		logger:  logger.With("component", "dispatch_worker", "courier", c.Name()),
	}
}

func (w *DispatchWorker) Courier() *courier.Courier {
	return w.courier
}

// Run loops until the buffer is closed and drained (nil) or ctx is
// cancelled (the context error, possibly joined with
// commands.ErrDeliveryAborted). Any other failure is logged and the loop
// moves on to the next order.
func (w *DispatchWorker) Run(ctx context.Context) error {
	cmd, err := commands.NewDispatchOrderCommand(w.courier)
	if err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "Dispatch worker started")

	for {
		result, err := w.handler.Handle(ctx, cmd)
		switch {
		case err == nil:
			w.logResult(ctx, result)
		case errors.Is(err, commands.ErrNoOrderFound):
			w.logger.InfoContext(ctx, "Dispatch worker finished, no more orders")
			return nil
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			w.logger.WarnContext(ctx, "Dispatch worker cancelled", "error", err)
			return err
		default:
			w.logger.ErrorContext(ctx, "Dispatch worker failed to deliver order", "error", err)
		}
	}
}

func (w *DispatchWorker) logResult(ctx context.Context, result commands.DispatchOrderResult) {
	report := result.Report
	w.logger.InfoContext(ctx, report.Header, "order_id", report.OrderID)
	for _, check := range report.Checks {
		w.logger.DebugContext(ctx, check, "order_id", report.OrderID)
	}
	w.logger.InfoContext(ctx, "Order delivered",
		"order_id", report.OrderID,
		"estimated_minutes", report.EstimatedMinutes,
		"took", result.Took,
		"summary", report.Summary,
	)
}
