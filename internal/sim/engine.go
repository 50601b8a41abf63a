package sim

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/infra/clock"
	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/ports"
)

// Engine owns one simulation run: a registry, a generator goroutine and the
// worker goroutines it spawns. Start and Stop bracket a run; Snapshot and
// Stats are safe from any goroutine at any time.
type Engine struct {
	cfg       domain.Config
	clock     ports.Clock
	log       *slog.Logger
	observers []Observer

	mu       sync.Mutex
	started  bool
	seed     uint64
	registry *Registry
	gen      *generator
	cancel   context.CancelFunc
	wg       *sync.WaitGroup
}

type Option func(*Engine)

// WithClock swaps the wall clock for a controllable one in tests.
func WithClock(c ports.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger routes engine events to the given structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithObservers registers lifecycle observers for every run of this engine.
func WithObservers(obs ...Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, obs...) }
}

// NewEngine validates cfg and builds a stopped engine.
func NewEngine(cfg domain.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		clock: clock.NewSystem(),
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registry = NewRegistry(cfg.MaxActive, e.observers...)
	return e, nil
}

// Start launches a fresh run. Counters and vehicles from a previous run are
// discarded. It returns domain.ErrAlreadyStarted while a run is live.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return &domain.OpError{
			Op:   "engine.start",
			Kind: domain.KindExecution,
			Err:  domain.ErrAlreadyStarted,
		}
	}

	seed := e.cfg.Seed
	if seed == 0 {
		seed = uint64(e.clock.Now().UnixNano())
	}
	e.seed = seed
	e.registry = NewRegistry(e.cfg.MaxActive, e.observers...)

	runCtx, cancel := context.WithCancel(ctx)
	wg := &sync.WaitGroup{}
	e.gen = newGenerator(e.registry, e.clock, e.cfg, seed, e.log, wg)
	e.cancel = cancel
	e.wg = wg
	e.started = true

	wg.Add(1)
	go func(g *generator) {
		defer wg.Done()
		g.run(runCtx)
	}(e.gen)

	e.log.Info("engine.start", "seed", seed, "max_active", e.cfg.MaxActive)
	return nil
}

// Stop cancels the run and blocks until the generator and every worker have
// exited. After it returns, no goroutine of this engine mutates the registry
// and the registry holds no vehicles.
func (e *Engine) Stop() error {
	e.mu.Lock()
	if !e.started {
		e.mu.Unlock()
		return &domain.OpError{
			Op:   "engine.stop",
			Kind: domain.KindExecution,
			Err:  domain.ErrNotStarted,
		}
	}
	cancel := e.cancel
	wg := e.wg
	e.started = false
	e.cancel = nil
	e.wg = nil
	e.mu.Unlock()

	cancel()
	wg.Wait()

	stats := e.Stats()
	e.log.Info("engine.stop",
		"generated", stats.Generated,
		"passed", stats.Passed,
		"removed", stats.Removed,
		"dropped", stats.Dropped,
	)
	return nil
}

// Snapshot returns a consistent copy of the live vehicles.
func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	reg := e.registry
	e.mu.Unlock()
	return reg.Snapshot(e.clock.Now())
}

// Stats returns the counters of the current run, or of the last run once
// stopped.
func (e *Engine) Stats() domain.Stats {
	e.mu.Lock()
	reg := e.registry
	gen := e.gen
	e.mu.Unlock()

	stats := reg.Stats()
	if gen != nil {
		stats.Dropped = gen.droppedCount()
	}
	return stats
}

// Seed reports the effective seed of the current run. It is the configured
// seed, or the clock-derived one when the config left it at zero.
func (e *Engine) Seed() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seed
}

var _ ports.Simulation = (*Engine)(nil)
