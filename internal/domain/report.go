package domain

import "time"

// RunReport summarizes a finished headless run.
type RunReport struct {
	StartedAt time.Time
	EndedAt   time.Time
	// Seed is the effective seed of the run, useful for replaying it.
	Seed  uint64
	Stats Stats
}

// Duration is the wall time the run actually covered.
func (r RunReport) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}
