package sim

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

// generatorStream is the PCG stream reserved for the arrival process.
// Vehicle workers use their sequence number (starting at 1) as stream, so
// arrival randomness and dwell randomness never share a sequence.
const generatorStream = 0

// generator mints vehicles at random arrival intervals, admits them into the
// registry and spawns a worker per admitted vehicle.
type generator struct {
	registry *Registry
	clock    ports.Clock
	cfg      domain.Config
	seed     uint64
	rng      *rand.Rand
	log      *slog.Logger
	wg       *sync.WaitGroup

	seq     uint64
	dropped atomic.Uint64
}

func newGenerator(reg *Registry, clk ports.Clock, cfg domain.Config, seed uint64, log *slog.Logger, wg *sync.WaitGroup) *generator {
	return &generator{
		registry: reg,
		clock:    clk,
		cfg:      cfg,
		seed:     seed,
		rng:      rand.New(rand.NewPCG(seed, generatorStream)),
		log:      log,
		wg:       wg,
	}
}

// run produces vehicles until ctx is cancelled. Each iteration admits a
// vehicle first and sleeps the arrival interval last, so the first vehicle
// appears as soon as the run starts. Workers are added to the generator's
// WaitGroup before their goroutine starts, and run itself is counted by the
// caller, so waiting on the group observes full quiescence.
func (g *generator) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		v := g.mint()
		switch err := g.registry.Register(v); {
		case err == nil:
			w := newWorker(v, g.registry, g.clock, g.cfg, g.seed, g.log)
			g.wg.Add(1)
			go func() {
				defer g.wg.Done()
				w.run(ctx)
			}()
		case errors.Is(err, domain.ErrAtCapacity):
			g.dropped.Add(1)
			g.log.Debug("generator.dropped", "id", v.ID, "active", g.registry.Len())
		default:
			g.log.Error("generator.register_failed", "id", v.ID, "err", err.Error())
		}

		if err := g.clock.Sleep(ctx, g.cfg.ArrivalDelay.Duration(g.rng)); err != nil {
			return
		}
	}
}

// mint builds the next Waiting vehicle. IDs are short uuid prefixes, unique
// enough for a single run and friendly to table rendering.
func (g *generator) mint() domain.Vehicle {
	g.seq++
	return domain.Vehicle{
		ID:        uuid.New().String()[:8],
		Seq:       g.seq,
		Type:      g.cfg.VehicleTypes[g.rng.IntN(len(g.cfg.VehicleTypes))],
		Direction: g.cfg.Directions[g.rng.IntN(len(g.cfg.Directions))],
		State:     domain.StateWaiting,
		ArrivalAt: g.clock.Now(),
	}
}

// droppedCount reports how many arrivals the admission limit rejected.
func (g *generator) droppedCount() uint64 {
	return g.dropped.Load()
}
