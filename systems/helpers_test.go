package systems

import (
	"testing"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/config"
	"github.com/pthm-cable/bugworld/traits"
)

func init() {
	// Initialize config for tests
	config.MustInit("")
}

// seqRand returns scripted draws in order, then fallback forever.
type seqRand struct {
	draws    []int
	fallback int
	calls    int
}

func (s *seqRand) Intn(n int) int {
	s.calls++
	if len(s.draws) == 0 {
		return s.fallback % n
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

func testRules() Rules {
	return NewRules(config.Cfg())
}

func testGrid(w, h int) *Grid {
	return NewGrid(w, h, PaletteFromConfig(config.Cfg()))
}

// addOrganism places a living organism with the given state directly.
func addOrganism(t *testing.T, s *Store, pos components.Pos, health uint8, age int, tr traits.Traits) components.OrganismID {
	t.Helper()
	id, ok := s.Alloc()
	if !ok {
		t.Fatal("Alloc failed")
	}
	o := s.At(id)
	o.Pos = s.grid.Wrap(pos)
	o.Alive = true
	o.Health = health
	o.Age = age
	o.Traits = tr
	s.Place(id)
	return id
}

// checkOccupancy verifies the one-to-one cell/organism relation.
func checkOccupancy(t *testing.T, g *Grid, s *Store) {
	t.Helper()
	for i := 0; i < g.Len(); i++ {
		id, ok := g.Occupant(i)
		if !ok {
			if g.Cell(i).Occupant != components.NoOrganism {
				t.Errorf("cell %d is %s but references %d", i, g.Kind(i), g.Cell(i).Occupant)
			}
			continue
		}
		o, alive := s.Get(id)
		if !alive {
			t.Errorf("cell %d references dead organism %d", i, id)
			continue
		}
		if g.Index(o.Pos) != i {
			t.Errorf("cell %d references organism %d at %+v", i, id, o.Pos)
		}
	}
	for id := 0; id < s.Len(); id++ {
		o := s.At(components.OrganismID(id))
		if !o.Alive {
			continue
		}
		occ, ok := g.Occupant(g.Index(o.Pos))
		if !ok || occ != components.OrganismID(id) {
			t.Errorf("organism %d at %+v not referenced by its cell", id, o.Pos)
		}
	}
}
