package ports

import (
	"context"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
)

// Simulation drives the intersection: it spawns vehicles, walks each one
// through its lifecycle, and exposes consistent views of the live state.
type Simulation interface {
	// Start launches the generator and vehicle workers. It returns
	// domain.ErrAlreadyStarted on a second call.
	Start(ctx context.Context) error
	// Stop cancels all workers and blocks until they have exited.
	// It returns domain.ErrNotStarted if Start never ran.
	Stop() error
	// Snapshot returns a point-in-time copy of every tracked vehicle.
	Snapshot() domain.Snapshot
	// Stats returns lifetime counters for the current run.
	Stats() domain.Stats
	// Seed reports the effective random seed of the current run, or zero
	// before the first Start.
	Seed() uint64
}
