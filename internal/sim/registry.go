package sim

import (
	"sort"
	"sync"
	"time"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
)

// Registry is the single source of truth for live vehicles. It stores whole
// Vehicle values under one mutex, so every committed update replaces the
// value atomically and readers can never see a half-written vehicle.
//
// Observers are notified after the commit, outside the lock. A vehicle is
// only ever driven by one worker goroutine, which keeps its events ordered.
type Registry struct {
	mu        sync.Mutex
	vehicles  map[string]domain.Vehicle
	capacity  int // 0 means unbounded
	observers []Observer

	registered uint64
	passed     uint64
	removed    uint64
}

// NewRegistry builds a registry that admits at most capacity concurrent
// vehicles (0 for no limit) and fans events out to the given observers.
func NewRegistry(capacity int, observers ...Observer) *Registry {
	return &Registry{
		vehicles:  make(map[string]domain.Vehicle),
		capacity:  capacity,
		observers: observers,
	}
}

// Register admits v in Waiting state. It returns domain.ErrDuplicateID if
// the id is already tracked and domain.ErrAtCapacity when the concurrency
// limit is reached; the caller decides whether a rejected arrival is dropped.
func (r *Registry) Register(v domain.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if v.State != domain.StateWaiting {
		return &domain.OpError{
			Op:   "registry.register",
			Kind: domain.KindInvariant,
			Err:  domain.ErrBadTransition,
		}
	}

	r.mu.Lock()
	if _, exists := r.vehicles[v.ID]; exists {
		r.mu.Unlock()
		return &domain.OpError{
			Op:   "registry.register",
			Kind: domain.KindExecution,
			Err:  domain.ErrDuplicateID,
		}
	}
	if r.capacity > 0 && len(r.vehicles) >= r.capacity {
		r.mu.Unlock()
		return &domain.OpError{
			Op:   "registry.register",
			Kind: domain.KindExecution,
			Err:  domain.ErrAtCapacity,
		}
	}
	r.vehicles[v.ID] = v
	r.registered++
	r.mu.Unlock()

	for _, o := range r.observers {
		o.VehicleRegistered(v)
	}
	return nil
}

// Publish commits a state transition for the vehicle with the given id.
// Entering Crossing stamps the vehicle's CrossingAt with at. Only the legal
// Waiting->Crossing->Passed order is accepted.
func (r *Registry) Publish(id string, next domain.VehicleState, at time.Time) (domain.Vehicle, error) {
	r.mu.Lock()
	v, ok := r.vehicles[id]
	if !ok {
		r.mu.Unlock()
		return domain.Vehicle{}, &domain.OpError{
			Op:   "registry.publish",
			Kind: domain.KindNotFound,
			Err:  domain.ErrNotFound,
		}
	}
	from := v.State
	if !from.CanTransitionTo(next) {
		r.mu.Unlock()
		return domain.Vehicle{}, &domain.OpError{
			Op:   "registry.publish",
			Kind: domain.KindInvariant,
			Err:  domain.ErrBadTransition,
		}
	}

	v.State = next
	if next == domain.StateCrossing {
		v.CrossingAt = at
	}
	r.vehicles[id] = v
	if next == domain.StatePassed {
		r.passed++
	}
	r.mu.Unlock()

	for _, o := range r.observers {
		o.VehicleTransitioned(v, from)
	}
	return v, nil
}

// Remove takes the vehicle out of the registry. Removing an id that is not
// tracked is a no-op, so shutdown and grace-period expiry cannot race into
// an error.
func (r *Registry) Remove(id string, reason RemoveReason) (domain.Vehicle, bool) {
	r.mu.Lock()
	v, ok := r.vehicles[id]
	if !ok {
		r.mu.Unlock()
		return domain.Vehicle{}, false
	}
	delete(r.vehicles, id)
	r.removed++
	r.mu.Unlock()

	for _, o := range r.observers {
		o.VehicleRemoved(v, reason)
	}
	return v, true
}

// Snapshot copies every tracked vehicle under a single lock acquisition.
// Vehicles are ordered by arrival sequence.
func (r *Registry) Snapshot(at time.Time) domain.Snapshot {
	r.mu.Lock()
	vehicles := make([]domain.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		vehicles = append(vehicles, v)
	}
	r.mu.Unlock()

	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].Seq < vehicles[j].Seq })
	return domain.Snapshot{TakenAt: at, Vehicles: vehicles}
}

// Len reports how many vehicles are currently tracked.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vehicles)
}

// Stats returns the run's lifetime counters. Dropped arrivals are counted by
// the generator, not here.
func (r *Registry) Stats() domain.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.Stats{
		Generated: r.registered,
		Active:    uint64(len(r.vehicles)),
		Passed:    r.passed,
		Removed:   r.removed,
	}
}
