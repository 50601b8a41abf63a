package sim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

// virtualClock advances its own time on every Sleep and never blocks, so a
// whole vehicle lifecycle runs in microseconds with exact timestamps.
type virtualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newVirtualClock() *virtualClock {
	return &virtualClock{now: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *virtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *virtualClock) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
	return nil
}

// thresholdClock returns immediately from short sleeps and blocks on long
// ones until the context is cancelled. Tests use degenerate delay ranges to
// steer which waits block.
type thresholdClock struct {
	virtualClock
	blockAtOrAbove time.Duration
}

func (c *thresholdClock) Sleep(ctx context.Context, d time.Duration) error {
	if d >= c.blockAtOrAbove {
		<-ctx.Done()
		return ctx.Err()
	}
	return c.virtualClock.Sleep(ctx, d)
}

// recordingObserver captures lifecycle events for assertions.
type recordingObserver struct {
	mu      sync.Mutex
	events  []string
	removed map[string]RemoveReason
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{removed: make(map[string]RemoveReason)}
}

func (o *recordingObserver) VehicleRegistered(v domain.Vehicle) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, v.ID+":registered")
}

func (o *recordingObserver) VehicleTransitioned(v domain.Vehicle, from domain.VehicleState) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, v.ID+":"+string(from)+"->"+string(v.State))
}

func (o *recordingObserver) VehicleRemoved(v domain.Vehicle, reason RemoveReason) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, v.ID+":removed")
	o.removed[v.ID] = reason
}

func (o *recordingObserver) snapshot() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.events...)
}

func (o *recordingObserver) removeReason(id string) (RemoveReason, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	r, ok := o.removed[id]
	return r, ok
}

// waitFor polls cond until it holds or the deadline expires.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", msg)
}

func fixedRange(d time.Duration) domain.DelayRange {
	return domain.DelayRange{Min: d, Max: d}
}

func testConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.WaitingDelay = fixedRange(2 * time.Second)
	cfg.CrossingDelay = fixedRange(time.Second)
	cfg.GracePeriod = 5 * time.Second
	cfg.ArrivalDelay = fixedRange(time.Second)
	cfg.Seed = 1
	return cfg
}

var (
	_ ports.Clock = (*virtualClock)(nil)
	_ ports.Clock = (*thresholdClock)(nil)
	_ Observer    = (*recordingObserver)(nil)
)
