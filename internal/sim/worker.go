package sim

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

// worker drives a single registered vehicle through its lifecycle. The
// vehicle's dwell times come from its own PCG stream, so they depend only on
// the run seed and the vehicle's sequence number, never on goroutine
// scheduling.
type worker struct {
	id       string
	registry *Registry
	clock    ports.Clock
	cfg      domain.Config
	rng      *rand.Rand
	log      *slog.Logger
}

func newWorker(v domain.Vehicle, reg *Registry, clk ports.Clock, cfg domain.Config, seed uint64, log *slog.Logger) *worker {
	return &worker{
		id:       v.ID,
		registry: reg,
		clock:    clk,
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(seed, v.Seq)),
		log:      log,
	}
}

// run blocks until the vehicle completes its lifecycle or ctx is cancelled.
// On cancellation the vehicle deregisters itself, so a stopped simulation
// never leaks registry entries.
func (w *worker) run(ctx context.Context) {
	if err := w.clock.Sleep(ctx, w.cfg.WaitingDelay.Duration(w.rng)); err != nil {
		w.evict()
		return
	}
	if !w.publish(domain.StateCrossing) {
		return
	}

	if err := w.clock.Sleep(ctx, w.cfg.CrossingDelay.Duration(w.rng)); err != nil {
		w.evict()
		return
	}
	if !w.publish(domain.StatePassed) {
		return
	}

	if err := w.clock.Sleep(ctx, w.cfg.GracePeriod); err != nil {
		w.evict()
		return
	}
	w.registry.Remove(w.id, RemoveCompleted)
}

func (w *worker) publish(next domain.VehicleState) bool {
	if _, err := w.registry.Publish(w.id, next, w.clock.Now()); err != nil {
		// The vehicle vanished or the transition was rejected. Either way
		// this worker no longer owns a live entry.
		w.log.Error("worker.publish_failed", "id", w.id, "next", string(next), "err", err.Error())
		w.registry.Remove(w.id, RemoveCancelled)
		return false
	}
	return true
}

func (w *worker) evict() {
	if _, ok := w.registry.Remove(w.id, RemoveCancelled); ok {
		w.log.Debug("worker.cancelled", "id", w.id)
	}
}
