package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"speedfast/internal/core/application/usecases/commands"
	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/pkg/pause"
)

var ErrGeneratorAlreadyRun = errors.New("order generator can only run once")

// OrderGeneratorConfig controls how many orders are produced and how fast.
type OrderGeneratorConfig struct {
	// Count is ignored when Unbounded is set.
	Count     int
	Unbounded bool

	// Kinds the generator picks from; empty means every kind.
	Kinds []order.Kind

	MinDelay time.Duration
	MaxDelay time.Duration
}

// OrderGeneratorJob produces random orders and stages them through
// CreateOrderCommandHandler. Insert blocks while the buffer is full, which
// throttles the generator to the couriers' pace.
type OrderGeneratorJob struct {
	handler commands.CreateOrderCommandHandler
	config  OrderGeneratorConfig
	logger  *slog.Logger

	started   atomic.Bool
	generated atomic.Int64
}

func NewOrderGeneratorJob(
	handler commands.CreateOrderCommandHandler,
	config OrderGeneratorConfig,
	logger *slog.Logger,
) *OrderGeneratorJob {
	if len(config.Kinds) == 0 {
		config.Kinds = order.AllKinds()
	}

	return &OrderGeneratorJob{
		handler: handler,
		config:  config,
		logger:  logger.With("component", "order_generator_job"),
	}
}

// Run blocks until every order is staged or ctx is cancelled, in which
// case it returns ctx.Err(). A job runs at most once.
func (j *OrderGeneratorJob) Run(ctx context.Context) error {
	if !j.started.CompareAndSwap(false, true) {
		return ErrGeneratorAlreadyRun
	}

	j.logger.InfoContext(ctx, "Order generator job started",
		"count", j.config.Count, "unbounded", j.config.Unbounded)

	for i := 0; j.config.Unbounded || i < j.config.Count; i++ {
		if i > 0 {
			if err := pause.For(ctx, pause.Jitter(j.config.MinDelay, j.config.MaxDelay)); err != nil {
				return j.stopped(ctx, err)
			}
		}

		cmd, err := j.nextCommand()
		if err != nil {
			return err
		}

		id, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			if ctx.Err() != nil {
				return j.stopped(ctx, ctx.Err())
			}
			return fmt.Errorf("failed to stage generated order: %w", err)
		}

		j.generated.Add(1)
		j.logger.InfoContext(ctx, "Order staged",
			"order_id", id, "kind", cmd.Kind().String(), "priority", cmd.Priority().String())
	}

	j.logger.InfoContext(ctx, "Order generator job finished", "generated", j.generated.Load())
	return nil
}

// Generated is the number of orders staged so far.
func (j *OrderGeneratorJob) Generated() int64 {
	return j.generated.Load()
}

func (j *OrderGeneratorJob) stopped(ctx context.Context, err error) error {
	j.logger.InfoContext(ctx, "Order generator job cancelled", "generated", j.generated.Load())
	return err
}

func (j *OrderGeneratorJob) nextCommand() (commands.CreateOrderCommand, error) {
	kind := j.config.Kinds[rand.IntN(len(j.config.Kinds))] //nolint:gosec // simulation data

	var weightKg float64
	if kind.RequiresWeight() {
		weightKg = 1 + rand.Float64()*9 //nolint:gosec // simulation data
	}

	return commands.NewCreateOrderCommand(
		kind,
		kind.DefaultPriority(),
		fmt.Sprintf("%d Dispatch Avenue", 100+rand.IntN(9900)), //nolint:gosec // simulation data
		1+rand.Float64()*10, //nolint:gosec // simulation data
		weightKg,
	)
}
