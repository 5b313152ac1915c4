package cmd

import (
	"context"
	"os"
	"os/signal"
)

// NotifyShutdown returns a context cancelled by the first of signals. Signal
// handling is restored to the default right after, so a second signal
// terminates the process instead of being swallowed while the pipeline
// drains.
func NotifyShutdown(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, signals...)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}
