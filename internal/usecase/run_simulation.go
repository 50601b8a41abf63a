package usecase

import (
	"context"
	"time"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

// RunSimulation drives a headless, time-boxed run: start the simulation,
// let it work for a fixed duration, stop it and report the counters.
type RunSimulation struct {
	sim   ports.Simulation
	clock ports.Clock
}

func NewRunSimulation(sim ports.Simulation, clock ports.Clock) *RunSimulation {
	return &RunSimulation{sim: sim, clock: clock}
}

// Execute runs the simulation for d. Cancelling ctx ends the run early; that
// is a normal way to finish, not an error. The returned report covers the
// time the run actually spent.
func (uc *RunSimulation) Execute(ctx context.Context, d time.Duration) (domain.RunReport, error) {
	started := uc.clock.Now()

	if err := uc.sim.Start(ctx); err != nil {
		return domain.RunReport{}, err
	}

	// Context cancellation falls through to the same orderly stop.
	_ = uc.clock.Sleep(ctx, d)

	if err := uc.sim.Stop(); err != nil {
		return domain.RunReport{}, err
	}

	return domain.RunReport{
		StartedAt: started,
		EndedAt:   uc.clock.Now(),
		Seed:      uc.sim.Seed(),
		Stats:     uc.sim.Stats(),
	}, nil
}
