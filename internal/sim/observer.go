package sim

import (
	"log/slog"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/domain"
)

// RemoveReason records why a vehicle left the registry.
type RemoveReason string

const (
	// RemoveCompleted marks a vehicle that finished its grace period.
	RemoveCompleted RemoveReason = "completed"
	// RemoveCancelled marks a vehicle evicted by a shutdown.
	RemoveCancelled RemoveReason = "cancelled"
)

// Observer receives registry lifecycle events. Callbacks for one vehicle
// arrive in lifecycle order; callbacks for different vehicles may interleave.
// Implementations must not call back into the registry.
type Observer interface {
	// VehicleRegistered is called after a vehicle is admitted in Waiting state.
	VehicleRegistered(v domain.Vehicle)

	// VehicleTransitioned is called after a state change is committed.
	VehicleTransitioned(v domain.Vehicle, from domain.VehicleState)

	// VehicleRemoved is called after a vehicle leaves the registry.
	VehicleRemoved(v domain.Vehicle, reason RemoveReason)
}

// BaseObserver provides no-op implementations so observers can pick the
// callbacks they care about.
type BaseObserver struct{}

func (BaseObserver) VehicleRegistered(domain.Vehicle) {}

func (BaseObserver) VehicleTransitioned(domain.Vehicle, domain.VehicleState) {}

func (BaseObserver) VehicleRemoved(domain.Vehicle, RemoveReason) {}

var _ Observer = BaseObserver{}

// LogObserver writes every lifecycle event to a structured logger.
type LogObserver struct {
	log *slog.Logger
}

var _ Observer = (*LogObserver)(nil)

func NewLogObserver(log *slog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) VehicleRegistered(v domain.Vehicle) {
	o.log.Info("vehicle.registered",
		"id", v.ID,
		"seq", v.Seq,
		"type", string(v.Type),
		"direction", string(v.Direction),
	)
}

func (o *LogObserver) VehicleTransitioned(v domain.Vehicle, from domain.VehicleState) {
	o.log.Info("vehicle.transitioned",
		"id", v.ID,
		"from", string(from),
		"to", string(v.State),
	)
}

func (o *LogObserver) VehicleRemoved(v domain.Vehicle, reason RemoveReason) {
	o.log.Info("vehicle.removed",
		"id", v.ID,
		"state", string(v.State),
		"reason", string(reason),
	)
}
