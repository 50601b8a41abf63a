package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// DelayRange is a bounded interval from which random dwell times are drawn.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Duration draws a delay uniformly from the half-open interval [Min, Max).
// An empty or inverted range yields Min, which is what fixed-delay test
// configs rely on.
func (r DelayRange) Duration(rng *rand.Rand) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(rng.Int64N(int64(r.Max-r.Min)))
}

// Validate checks the range bounds.
func (r DelayRange) Validate() error {
	if r.Min < 0 {
		return errors.New("min must be >= 0")
	}
	if r.Max < r.Min {
		return errors.New("max must be >= min")
	}
	return nil
}

// Config carries every tunable of a simulation run.
type Config struct {
	// VehicleTypes is the set the generator draws from. Must be non-empty.
	VehicleTypes []VehicleType

	// Directions is the set the generator draws from. Must be a non-empty
	// subset of the four known directions.
	Directions []Direction

	// WaitingDelay bounds the dwell in the Waiting state.
	WaitingDelay DelayRange

	// CrossingDelay bounds the dwell in the Crossing state.
	CrossingDelay DelayRange

	// GracePeriod is the fixed time a vehicle stays visible after passing,
	// before its worker deregisters it.
	GracePeriod time.Duration

	// ArrivalDelay bounds the generator's pause between vehicles.
	ArrivalDelay DelayRange

	// Seed feeds every random stream in the run. Zero means "pick one from
	// the wall clock at start"; any other value makes per-vehicle delay
	// sequences reproducible.
	Seed uint64

	// MaxActive caps concurrently registered vehicles. Zero disables the
	// cap: worker count then grows with the arrival rate, which is
	// acceptable for a bounded interactive run. A positive cap switches the
	// generator to drop-newest admission.
	MaxActive int
}

// DefaultConfig returns the stock timings: waiting 1-3s, crossing 1-2s, a 5s
// grace period, and 1-3s between arrivals.
func DefaultConfig() Config {
	return Config{
		VehicleTypes:  DefaultVehicleTypes(),
		Directions:    AllDirections(),
		WaitingDelay:  DelayRange{Min: 1 * time.Second, Max: 3 * time.Second},
		CrossingDelay: DelayRange{Min: 1 * time.Second, Max: 2 * time.Second},
		GracePeriod:   5 * time.Second,
		ArrivalDelay:  DelayRange{Min: 1 * time.Second, Max: 3 * time.Second},
	}
}

// Validate reports the first problem found with the configuration.
func (c Config) Validate() error {
	if len(c.VehicleTypes) == 0 {
		return invalidConfig("vehicle type set is empty")
	}
	for _, vt := range c.VehicleTypes {
		if vt == "" {
			return invalidConfig("vehicle type name is empty")
		}
	}
	if len(c.Directions) == 0 {
		return invalidConfig("direction set is empty")
	}
	seen := make(map[Direction]bool, len(c.Directions))
	for _, d := range c.Directions {
		if !d.Valid() {
			return invalidConfig(fmt.Sprintf("unknown direction %q", d))
		}
		if seen[d] {
			return invalidConfig(fmt.Sprintf("duplicate direction %q", d))
		}
		seen[d] = true
	}
	if err := c.WaitingDelay.Validate(); err != nil {
		return invalidConfig(fmt.Sprintf("waiting delay: %v", err))
	}
	if err := c.CrossingDelay.Validate(); err != nil {
		return invalidConfig(fmt.Sprintf("crossing delay: %v", err))
	}
	if err := c.ArrivalDelay.Validate(); err != nil {
		return invalidConfig(fmt.Sprintf("arrival delay: %v", err))
	}
	if c.GracePeriod < 0 {
		return invalidConfig("grace period must be >= 0")
	}
	if c.MaxActive < 0 {
		return invalidConfig("max active must be >= 0")
	}
	return nil
}

func invalidConfig(msg string) error {
	return &OpError{Op: "domain.config", Kind: KindInvalidConfig, Err: errors.New(msg)}
}
