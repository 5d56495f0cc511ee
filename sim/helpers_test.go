package sim

import (
	"testing"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/config"
	"github.com/pthm-cable/bugworld/traits"
)

// seqRand returns scripted draws in order, then fallback forever.
type seqRand struct {
	draws    []int
	fallback int
}

func (s *seqRand) Intn(n int) int {
	if len(s.draws) == 0 {
		return s.fallback % n
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

// noRegrowth never grows resources: every regeneration draw is the maximum.
const noRegrowth = 9999

// smallConfig returns a w x h config. moveCostProb 0 disables the move cost.
func smallConfig(t *testing.T, w, h int, moveCostProb float64) *config.Config {
	t.Helper()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	cfg.World.Width = w
	cfg.World.Height = h
	cfg.Rules.MoveCostProb = moveCostProb
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Recompute()
	return cfg
}

// place puts a living organism on the grid.
func place(t *testing.T, s *Simulation, pos components.Pos, health uint8, age int, tr traits.Traits) components.OrganismID {
	t.Helper()
	id, ok := s.store.Alloc()
	if !ok {
		t.Fatal("Alloc failed")
	}
	o := s.store.At(id)
	o.Pos = pos
	o.Alive = true
	o.Health = health
	o.Age = age
	o.Traits = tr
	s.store.Place(id)
	return id
}

// checkOccupancy verifies that occupied cells and living organisms
// reference each other one to one.
func checkOccupancy(t *testing.T, s *Simulation) {
	t.Helper()
	g := s.grid
	occupied := 0
	for i := 0; i < g.Len(); i++ {
		id, ok := g.Occupant(i)
		if !ok {
			continue
		}
		occupied++
		o, alive := s.store.Get(id)
		if !alive {
			t.Fatalf("tick %d: cell %d references dead organism %d", s.tick, i, id)
		}
		if g.Index(o.Pos) != i {
			t.Fatalf("tick %d: cell %d references organism %d at %+v", s.tick, i, id, o.Pos)
		}
	}
	if alive := s.store.Census().Alive; alive != occupied {
		t.Fatalf("tick %d: %d alive organisms but %d occupied cells", s.tick, alive, occupied)
	}
}

// checkGenomes verifies that every living organism's cached code matches
// its traits and health, and that its cell shows that code's color.
func checkGenomes(t *testing.T, s *Simulation) {
	t.Helper()
	for i := 0; i < s.store.Len(); i++ {
		o := s.store.At(components.OrganismID(i))
		if !o.Alive {
			continue
		}
		if want := traits.Encode(o.Traits, o.Health) ^ o.Drift; o.Genome != want {
			t.Fatalf("tick %d: organism %d genome %s, want %s", s.tick, i, o.Genome, want)
		}
		if c := s.grid.CellAt(o.Pos).Color; c != o.Genome.Color() {
			t.Fatalf("tick %d: organism %d cell color %+v, want %+v", s.tick, i, c, o.Genome.Color())
		}
	}
}
