// Package latency models the network round-trip a real backend would add to
// operations like login and checkout. The delay is plain wall-clock time, not
// work, and aborts early when the caller goes away.
package latency

import (
	"context"
	"time"
)

// Simulate blocks for d, returning early with the context error when ctx is
// cancelled. A non-positive d returns immediately.
func Simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
