// Package jobs runs the dispatch pipeline in the background.
//
// # Available Jobs
//
//  1. OrderGeneratorJob - produces random orders and stages them, blocking while the buffer is full
//  2. DispatchWorker - one per courier, withdraws the most urgent order and delivers it
//  3. StateMonitorJob - cron job (github.com/robfig/cron/v3) logging buffer occupancy
//
// # Usage
//
// Jobs are run through JobManager, which owns the shutdown protocol:
//
//	jobManager := jobs.NewJobManager(generator, workers, monitor, buffer, time.Minute, logger)
//	if err := jobManager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
//		log.Fatal("pipeline failed:", err)
//	}
//
// # Shutdown
//
// When the generator finishes, or ctx is cancelled, the buffer is closed.
// Couriers keep withdrawing until it is drained and then exit. If draining
// takes longer than the shutdown timeout the couriers are cancelled and an
// order interrupted mid-delivery ends up Cancelled.
package jobs
