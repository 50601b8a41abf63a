package domain

import (
	"testing"
	"time"
)

func TestSnapshotGet(t *testing.T) {
	snap := Snapshot{Vehicles: []Vehicle{
		{ID: "aa11", Seq: 1, State: StateWaiting, Direction: North},
		{ID: "bb22", Seq: 2, State: StateCrossing, Direction: South},
	}}

	v, ok := snap.Get("bb22")
	if !ok || v.Seq != 2 {
		t.Fatalf("Get(bb22) = (%+v, %v), want seq 2", v, ok)
	}
	if _, ok := snap.Get("cc33"); ok {
		t.Fatal("Get(cc33) found a vehicle that was never added")
	}
}

func TestSnapshotOccupancy(t *testing.T) {
	snap := Snapshot{Vehicles: []Vehicle{
		{ID: "w1", Seq: 1, State: StateWaiting, Direction: North},
		{ID: "c1", Seq: 2, State: StateCrossing, Direction: North},
		{ID: "c2", Seq: 3, State: StateCrossing, Direction: North},
		{ID: "c3", Seq: 4, State: StateCrossing, Direction: East},
		{ID: "p1", Seq: 5, State: StatePassed, Direction: South},
	}}

	occ := snap.Occupancy()

	// Only crossing vehicles occupy the intersection.
	if got := len(occ[ZoneB]); got != 0 {
		t.Errorf("zone B holds %d vehicles, want 0 (passed vehicles do not occupy)", got)
	}
	// Two northbound vehicles crossing at once both appear in zone A.
	if got := len(occ[ZoneA]); got != 2 {
		t.Fatalf("zone A holds %d vehicles, want 2", got)
	}
	if occ[ZoneA][0].ID != "c1" || occ[ZoneA][1].ID != "c2" {
		t.Errorf("zone A = %q,%q, want c1,c2 in arrival order", occ[ZoneA][0].ID, occ[ZoneA][1].ID)
	}
	if got := len(occ[ZoneC]); got != 1 || occ[ZoneC][0].ID != "c3" {
		t.Errorf("zone C = %+v, want exactly c3", occ[ZoneC])
	}

	// A vehicle shows up in exactly one zone.
	counts := make(map[string]int)
	for _, vs := range occ {
		for _, v := range vs {
			counts[v.ID]++
		}
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("vehicle %s appears in %d zones, want 1", id, n)
		}
	}
}

func TestSnapshotCountByState(t *testing.T) {
	snap := Snapshot{Vehicles: []Vehicle{
		{ID: "a", State: StateWaiting},
		{ID: "b", State: StateWaiting},
		{ID: "c", State: StateCrossing},
		{ID: "d", State: StatePassed},
	}}
	counts := snap.CountByState()
	if counts[StateWaiting] != 2 || counts[StateCrossing] != 1 || counts[StatePassed] != 1 {
		t.Errorf("CountByState() = %v, want 2/1/1", counts)
	}
}

func TestSnapshotLen(t *testing.T) {
	var empty Snapshot
	if empty.Len() != 0 {
		t.Errorf("empty snapshot Len = %d", empty.Len())
	}
	snap := Snapshot{TakenAt: time.Now(), Vehicles: make([]Vehicle, 3)}
	if snap.Len() != 3 {
		t.Errorf("Len = %d, want 3", snap.Len())
	}
}
