package jobs_test

import (
	"testing"
	"time"

	"speedfast/internal/core/application/usecases/queries"
	"speedfast/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMonitorJob_SamplesOnStart(t *testing.T) {
	p := newPipeline(t, 10, nil)
	p.seedDemoOrders(t)
	monitor := jobs.NewStateMonitorJob(queries.NewGetPendingOrdersQueryHandler(p.buffer), time.Hour, discardLogger())

	_, ok := monitor.LastSample()
	require.False(t, ok)

	require.NoError(t, monitor.Start())
	defer monitor.Stop()

	sample, ok := monitor.LastSample()
	require.True(t, ok)
	assert.Equal(t, queries.GetPendingOrdersQueryResponse{Pending: 6, Capacity: 10}, sample)
}

func TestStateMonitorJob_ReportsClosedBuffer(t *testing.T) {
	p := newPipeline(t, 10, nil)
	p.seedDemoOrders(t)
	p.buffer.Close()
	monitor := jobs.NewStateMonitorJob(queries.NewGetPendingOrdersQueryHandler(p.buffer), time.Hour, discardLogger())

	require.NoError(t, monitor.Start())
	defer monitor.Stop()

	sample, ok := monitor.LastSample()
	require.True(t, ok)
	assert.True(t, sample.Closed)
	assert.Equal(t, 6, sample.Pending)
}

func TestStateMonitorJob_SamplesOnSchedule(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a cron tick")
	}

	p := newPipeline(t, 10, nil)
	monitor := jobs.NewStateMonitorJob(queries.NewGetPendingOrdersQueryHandler(p.buffer), time.Second, discardLogger())
	require.NoError(t, monitor.Start())
	defer monitor.Stop()

	p.seedDemoOrders(t)

	assert.Eventually(t, func() bool {
		sample, ok := monitor.LastSample()
		return ok && sample.Pending == 6
	}, 3*time.Second, 50*time.Millisecond)
}
