package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// BufferCloser is the part of ports.OrderBuffer the shutdown protocol needs.
type BufferCloser interface {
	Close()
}

// JobManager runs the pipeline: the generator produces until it is done
// or ctx is cancelled, then the buffer is closed and the couriers drain it.
type JobManager struct {
	generator       *OrderGeneratorJob
	workers         []*DispatchWorker
	monitor         *StateMonitorJob
	buffer          BufferCloser
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

func NewJobManager(
	generator *OrderGeneratorJob,
	workers []*DispatchWorker,
	monitor *StateMonitorJob,
	buffer BufferCloser,
	shutdownTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		generator:       generator,
		workers:         workers,
		monitor:         monitor,
		buffer:          buffer,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With("component", "job_manager"),
	}
}

// Run blocks until every worker has stopped. Workers run on a context
// detached from ctx so they can drain the buffer after the generator was
// cancelled; they are cancelled only when draining exceeds the shutdown
// timeout. The returned error joins the generator and worker errors, so
// errors.Is(err, context.Canceled) reports an interrupted run.
func (jm *JobManager) Run(ctx context.Context) error {
	if err := jm.monitor.Start(); err != nil {
		return fmt.Errorf("failed to start state monitor job: %w", err)
	}
	defer jm.monitor.Stop()

	workerCtx, cancelWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelWorkers()

	couriers := make([]string, 0, len(jm.workers))
	for _, w := range jm.workers {
		couriers = append(couriers, w.Courier().Name())
	}
	jm.logger.InfoContext(ctx, "Starting couriers", "couriers", couriers)

	var g errgroup.Group
	for _, w := range jm.workers {
		g.Go(func() error {
			return w.Run(workerCtx)
		})
	}

	generatorErr := jm.generator.Run(ctx)
	if generatorErr != nil && ctx.Err() == nil {
		jm.logger.ErrorContext(ctx, "Order generator job failed", "error", generatorErr)
	}

	jm.buffer.Close()
	jm.logger.InfoContext(ctx, "Staging buffer closed, waiting for couriers to drain it",
		"timeout", jm.shutdownTimeout)

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	var workersErr error
	select {
	case workersErr = <-done:
	case <-time.After(jm.shutdownTimeout):
		jm.logger.WarnContext(ctx, "Shutdown timeout elapsed, cancelling in-flight deliveries")
		cancelWorkers()
		workersErr = <-done
	}

	return errors.Join(generatorErr, workersErr)
}
