// Package sim implements the concurrent intersection engine: a registry of
// live vehicles, one worker goroutine per vehicle, and a generator that
// admits new arrivals. The registry is the only shared mutable state; every
// read goes through whole-value snapshots so callers never observe a vehicle
// mid-update.
package sim
