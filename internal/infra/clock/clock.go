// Package clock provides the wall-clock implementation of ports.Clock.
package clock

import (
	"context"
	"time"
)

// System reads the real wall clock and sleeps on real timers.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now()
}

// Sleep waits for d, or returns early with ctx.Err() when ctx is cancelled.
// Non-positive durations only check for cancellation.
func (System) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
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
