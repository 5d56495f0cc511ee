package systems

import (
	"testing"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/traits"
)

func TestAllocReusesLowestSlot(t *testing.T) {
	g := testGrid(4, 4)
	s := NewStore(g)
	rng := &seqRand{}

	for i := 0; i < 4; i++ {
		if _, ok := s.Spawn(i, rng); !ok {
			t.Fatalf("Spawn(%d) failed", i)
		}
	}
	s.Kill(2)
	s.Kill(0)

	if id, ok := s.FindFreeSlot(); !ok || id != 0 {
		t.Errorf("FindFreeSlot() = %d, %v; want 0, true", id, ok)
	}

	want := []components.OrganismID{0, 2, 4}
	for _, w := range want {
		id, ok := s.Alloc()
		if !ok || id != w {
			t.Fatalf("Alloc() = %d, %v; want %d, true", id, ok, w)
		}
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
}

func TestAllocZeroesReusedRecord(t *testing.T) {
	g := testGrid(2, 2)
	s := NewStore(g)
	id, _ := s.Spawn(0, &seqRand{})
	s.At(id).Drift = 4
	s.Kill(id)

	re, _ := s.Alloc()
	if re != id {
		t.Fatalf("Alloc() = %d, want %d", re, id)
	}
	if o := s.At(re); *o != (components.Organism{}) {
		t.Errorf("reused record = %+v, want zero", *o)
	}
}

func TestAllocExhaustion(t *testing.T) {
	g := testGrid(2, 1)
	s := NewStore(g)

	for i := 0; i < 2; i++ {
		if _, ok := s.Alloc(); !ok {
			t.Fatalf("Alloc %d failed", i)
		}
	}
	if id, ok := s.Alloc(); ok {
		t.Errorf("Alloc beyond capacity returned %d", id)
	}
	if s.Capacity() != 2 {
		t.Errorf("Capacity() = %d, want 2", s.Capacity())
	}
}

func TestSpawn(t *testing.T) {
	g := testGrid(5, 5)
	s := NewStore(g)

	id, ok := s.Spawn(7, &seqRand{draws: []int{1, 2, 3, 4, 5}})
	if !ok {
		t.Fatal("Spawn failed")
	}
	o, alive := s.Get(id)
	if !alive {
		t.Fatal("spawned organism not alive")
	}
	if o.Health != traits.MaxHealth {
		t.Errorf("Health = %d, want %d", o.Health, traits.MaxHealth)
	}
	want := traits.Traits{Sex: 1, Vision: 2, Speed: 3, Drive: 4, Aggression: 5}
	if o.Traits != want {
		t.Errorf("Traits = %+v, want %+v", o.Traits, want)
	}
	if o.Pos != (components.Pos{X: 2, Y: 1}) {
		t.Errorf("Pos = %+v, want {2 1}", o.Pos)
	}
	c := g.Cell(7)
	if c.Occupant != id || c.Color != o.Genome.Color() {
		t.Errorf("cell = %+v, want occupant %d with genome color", c, id)
	}
	checkOccupancy(t, g, s)
}

func TestKill(t *testing.T) {
	g := testGrid(3, 3)
	s := NewStore(g)
	id := addOrganism(t, s, components.Pos{X: 1, Y: 1}, 50, 3, traits.Traits{})

	if !s.Kill(id) {
		t.Fatal("Kill returned false for a living organism")
	}
	if _, ok := s.Get(id); ok {
		t.Error("killed organism still resolves")
	}
	if s.At(id).Age != 0 {
		t.Errorf("Age = %d, want 0 after death", s.At(id).Age)
	}
	if _, ok := g.Occupant(4); ok {
		t.Error("cell not cleared")
	}
	if s.Kill(id) {
		t.Error("second Kill returned true")
	}
	if s.Deaths() != 1 {
		t.Errorf("Deaths() = %d, want 1", s.Deaths())
	}
}

func TestKillLeavesForeignCell(t *testing.T) {
	g := testGrid(3, 3)
	s := NewStore(g)
	a := addOrganism(t, s, components.Pos{X: 1, Y: 1}, 50, 0, traits.Traits{})
	// b overwrites a's cell
	b := addOrganism(t, s, components.Pos{X: 1, Y: 1}, 50, 0, traits.Traits{Sex: 1})

	s.Kill(a)
	if occ, ok := g.Occupant(4); !ok || occ != b {
		t.Errorf("Occupant(4) = %d, %v; want %d, true", occ, ok, b)
	}
}

func TestGetWeakReference(t *testing.T) {
	g := testGrid(3, 3)
	s := NewStore(g)
	id := addOrganism(t, s, components.Pos{}, 10, 0, traits.Traits{})

	tests := []struct {
		name string
		id   components.OrganismID
		want bool
	}{
		{"alive", id, true},
		{"none", components.NoOrganism, false},
		{"out of range", 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := s.Get(tt.id); ok != tt.want {
				t.Errorf("Get(%d) ok = %v, want %v", tt.id, ok, tt.want)
			}
		})
	}

	if _, _, ok := s.OccupantOf(0); !ok {
		t.Error("OccupantOf(0) did not resolve")
	}
	s.Kill(id)
	if _, _, ok := s.OccupantOf(0); ok {
		t.Error("OccupantOf resolved a dead organism")
	}
}

func TestReleaseUnbornSlot(t *testing.T) {
	g := testGrid(3, 1)
	s := NewStore(g)
	id, _ := s.Alloc()
	s.Release(id)
	s.Release(id)

	if free, ok := s.FindFreeSlot(); !ok || free != id {
		t.Errorf("FindFreeSlot() = %d, %v; want %d, true", free, ok, id)
	}
	if got, _ := s.Alloc(); got != id {
		t.Errorf("Alloc() = %d, want released slot %d", got, id)
	}
	if _, ok := s.FindFreeSlot(); ok {
		t.Error("double Release left a duplicate free slot")
	}
	if s.Deaths() != 0 {
		t.Errorf("Release counted as a death")
	}
}

func TestCensus(t *testing.T) {
	g := testGrid(4, 4)
	s := NewStore(g)

	if c := s.Census(); c != (Census{}) {
		t.Errorf("empty Census() = %+v, want zero", c)
	}

	addOrganism(t, s, components.Pos{X: 0}, 100, 0, traits.Traits{Vision: 1, Speed: 2, Drive: 3, Aggression: 4})
	addOrganism(t, s, components.Pos{X: 1}, 51, 0, traits.Traits{Vision: 2, Speed: 2, Drive: 6, Aggression: 9})
	dead := addOrganism(t, s, components.Pos{X: 2}, 255, 0, traits.Traits{Vision: 4, Drive: 16})
	s.Kill(dead)

	c := s.Census()
	want := Census{Alive: 2, MeanHealth: 75, MeanVision: 1, MeanSpeed: 2, MeanDrive: 4, MeanAggression: 6}
	if c != want {
		t.Errorf("Census() = %+v, want %+v", c, want)
	}
	if h := s.Healths(); len(h) != 2 || h[0] != 100 || h[1] != 51 {
		t.Errorf("Healths() = %v, want [100 51]", h)
	}
}
