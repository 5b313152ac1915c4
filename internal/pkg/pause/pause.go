// Package pause provides cancellable sleeps and random intervals used to
// pace the generator and simulate delivery time.
package pause

import (
	"context"
	"math/rand/v2"
	"time"
)

// For sleeps for d or until ctx is done, whichever comes first. It returns
// ctx.Err() when the sleep was cut short. A non-positive d only checks ctx.
func For(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Jitter returns a duration uniformly distributed in [minDelay, maxDelay].
// Reversed bounds are swapped.
func Jitter(minDelay, maxDelay time.Duration) time.Duration {
	if maxDelay < minDelay {
		minDelay, maxDelay = maxDelay, minDelay
	}
	if maxDelay == minDelay {
		return minDelay
	}

	return minDelay + rand.N(maxDelay-minDelay+1) //nolint:gosec // simulation timing
}

// Between returns a func that draws a fresh Jitter on every call.
func Between(minDelay, maxDelay time.Duration) func() time.Duration {
	return func() time.Duration {
		return Jitter(minDelay, maxDelay)
	}
}
