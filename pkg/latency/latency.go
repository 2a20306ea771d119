package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first. A
// non-positive d returns immediately with ctx's error, if any.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
