package domain

import "time"

// Snapshot is an immutable, internally consistent view of all active vehicles
// at one logical instant. Every derived view (the vehicle table, the
// occupancy grid) must be computed from the same Snapshot, never from two
// independent reads of the live registry.
type Snapshot struct {
	TakenAt time.Time

	// Vehicles is ordered by Seq (arrival order). Entries are copies; mutating
	// them has no effect on the registry.
	Vehicles []Vehicle
}

// Len returns the number of vehicles in the snapshot.
func (s Snapshot) Len() int { return len(s.Vehicles) }

// Get returns the vehicle with the given id, if present.
func (s Snapshot) Get(id string) (Vehicle, bool) {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

// Occupancy projects the snapshot onto the four zones. A vehicle occupies its
// direction's zone exactly while it is in the Crossing state. When several
// vehicles cross in the same direction at once the zone lists all of them;
// the projection never collapses concurrent occupants into one.
func (s Snapshot) Occupancy() map[Zone][]Vehicle {
	occ := make(map[Zone][]Vehicle, 4)
	for _, v := range s.Vehicles {
		if v.State != StateCrossing {
			continue
		}
		zone, ok := ZoneFor(v.Direction)
		if !ok {
			continue
		}
		occ[zone] = append(occ[zone], v)
	}
	return occ
}

// CountByState tallies vehicles per lifecycle state.
func (s Snapshot) CountByState() map[VehicleState]int {
	counts := make(map[VehicleState]int, 3)
	for _, v := range s.Vehicles {
		counts[v.State]++
	}
	return counts
}
