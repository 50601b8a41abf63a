package domain

// Zone is one of four fixed logical occupancy slots in the intersection, each
// associated with exactly one travel direction.
type Zone string

const (
	ZoneA Zone = "A" // northbound traffic
	ZoneB Zone = "B" // southbound traffic
	ZoneC Zone = "C" // eastbound traffic
	ZoneD Zone = "D" // westbound traffic
)

// AllZones returns the zones in display order.
func AllZones() []Zone {
	return []Zone{ZoneA, ZoneB, ZoneC, ZoneD}
}

// ZoneFor maps a direction to its occupancy zone. The table is fixed:
// North→A, South→B, East→C, West→D.
func ZoneFor(d Direction) (Zone, bool) {
	switch d {
	case North:
		return ZoneA, true
	case South:
		return ZoneB, true
	case East:
		return ZoneC, true
	case West:
		return ZoneD, true
	}
	return "", false
}
