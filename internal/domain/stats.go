package domain

// Stats are cumulative counters maintained by the registry over the life of a
// simulation run.
type Stats struct {
	// Generated counts vehicles admitted into the registry.
	Generated uint64

	// Active is the number of vehicles currently registered.
	Active uint64

	// Passed counts vehicles that completed their crossing.
	Passed uint64

	// Removed counts vehicles deregistered for any reason, including
	// cancellation during shutdown.
	Removed uint64

	// Dropped counts arrivals rejected by the admission policy when the
	// registry was at capacity. Always zero in unbounded mode.
	Dropped uint64
}
