package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"speedfast/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StateMonitorJob periodically samples staging buffer occupancy. It only
// reads and never blocks producers or couriers.
type StateMonitorJob struct {
	handler  queries.GetPendingOrdersQueryHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	last    atomic.Pointer[queries.GetPendingOrdersQueryResponse]
	samples atomic.Int64
}

// NewStateMonitorJob creates the monitor. cron schedules have one second
// resolution, shorter intervals run every second.
func NewStateMonitorJob(
	handler queries.GetPendingOrdersQueryHandler,
	interval time.Duration,
	logger *slog.Logger,
) *StateMonitorJob {
	return &StateMonitorJob{
		handler:  handler,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "state_monitor_job"),
	}
}

// Start takes one sample right away, then one per interval.
func (j *StateMonitorJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), j.sample)
	if err != nil {
		return err
	}

	j.sample()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "State monitor job started", "interval", j.interval)
	return nil
}

// Stop waits for a running sample to finish.
func (j *StateMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "State monitor job stopped", "samples", j.samples.Load())
}

// LastSample reports false until the first sample was taken.
func (j *StateMonitorJob) LastSample() (queries.GetPendingOrdersQueryResponse, bool) {
	last := j.last.Load()
	if last == nil {
		return queries.GetPendingOrdersQueryResponse{}, false
	}
	return *last, true
}

func (j *StateMonitorJob) sample() {
	ctx := context.Background()

	resp, err := j.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "State monitor job failed", "error", err)
		return
	}

	j.last.Store(&resp)
	j.samples.Add(1)
	j.logger.InfoContext(ctx, "Staging buffer state",
		"pending", resp.Pending, "capacity", resp.Capacity, "closed", resp.Closed)
}
