package domain

import "time"

// VehicleState is the lifecycle state of a vehicle at the intersection.
type VehicleState string

const (
	StateWaiting  VehicleState = "Waiting"
	StateCrossing VehicleState = "Crossing"
	StatePassed   VehicleState = "Passed"
)

// Valid reports whether s is one of the three known states.
func (s VehicleState) Valid() bool {
	switch s {
	case StateWaiting, StateCrossing, StatePassed:
		return true
	}
	return false
}

// Next returns the only legal successor state. The lifecycle is strictly
// Waiting → Crossing → Passed; Passed has no successor (the vehicle is
// removed, not transitioned).
func (s VehicleState) Next() (VehicleState, bool) {
	switch s {
	case StateWaiting:
		return StateCrossing, true
	case StateCrossing:
		return StatePassed, true
	}
	return "", false
}

// CanTransitionTo reports whether moving from s to next is legal. States never
// skip ahead, repeat, or regress.
func (s VehicleState) CanTransitionTo(next VehicleState) bool {
	n, ok := s.Next()
	return ok && n == next
}

func (s VehicleState) String() string { return string(s) }

// VehicleType is a cosmetic classification of a vehicle.
type VehicleType string

const (
	TypeCar   VehicleType = "Car"
	TypeTruck VehicleType = "Truck"
	TypeBus   VehicleType = "Bus"
)

// DefaultVehicleTypes returns the built-in type set.
func DefaultVehicleTypes() []VehicleType {
	return []VehicleType{TypeCar, TypeTruck, TypeBus}
}

// Direction is the travel direction of a vehicle. It determines which
// occupancy zone the vehicle affects while crossing.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// AllDirections returns the four known directions in display order.
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	_, ok := ZoneFor(d)
	return ok
}

// Vehicle is one traversal attempt through the intersection.
//
// ID, Seq, Type, Direction and ArrivalAt are immutable after creation.
// State advances monotonically (Waiting → Crossing → Passed) and CrossingAt is
// stamped exactly once, on the Waiting → Crossing transition. All mutation
// happens inside the registry; everything handed out of it is a copy.
type Vehicle struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string

	// Seq is a monotonically increasing sequence number assigned by the
	// engine. It gives snapshots a stable ordering and seeds the vehicle's
	// private delay stream.
	Seq uint64

	Type      VehicleType
	Direction Direction
	State     VehicleState

	ArrivalAt time.Time

	// CrossingAt is the zero time until the vehicle starts crossing.
	CrossingAt time.Time
}

// Elapsed returns the duration shown for the vehicle. While the vehicle is
// waiting or crossing this is the time since arrival; once it has passed, the
// value freezes at the time it spent before crossing.
func (v Vehicle) Elapsed(now time.Time) time.Duration {
	if v.State == StatePassed && !v.CrossingAt.IsZero() {
		return v.CrossingAt.Sub(v.ArrivalAt)
	}
	return now.Sub(v.ArrivalAt)
}

// Validate checks the internal consistency of the vehicle record. A violation
// is a programming error, not a runtime condition.
func (v Vehicle) Validate() error {
	if v.ID == "" {
		return &OpError{Op: "domain.vehicle", Kind: KindInvariant, Err: errEmptyID}
	}
	if !v.State.Valid() {
		return &OpError{Op: "domain.vehicle", Kind: KindInvariant, Err: errUnknownState}
	}
	if !v.Direction.Valid() {
		return &OpError{Op: "domain.vehicle", Kind: KindInvariant, Err: errUnknownDirection}
	}
	if v.State == StateWaiting && !v.CrossingAt.IsZero() {
		return &OpError{Op: "domain.vehicle", Kind: KindInvariant, Err: errEarlyCrossingStamp}
	}
	if v.State != StateWaiting && v.CrossingAt.IsZero() {
		return &OpError{Op: "domain.vehicle", Kind: KindInvariant, Err: errMissingCrossingStamp}
	}
	return nil
}
