package systems

import (
	"testing"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/traits"
)

func TestCanMate(t *testing.T) {
	r := testRules()
	base := func() (*components.Organism, *components.Organism) {
		mover := &components.Organism{Alive: true, Health: 100, Age: 10, Traits: traits.Traits{Drive: 5}}
		partner := &components.Organism{Alive: true, Health: 100, Age: 10}
		return mover, partner
	}

	tests := []struct {
		name      string
		mutate    func(m, p *components.Organism)
		draw      int
		want      bool
		wantCalls int
	}{
		{"mates", func(m, p *components.Organism) {}, 4, true, 1},
		{"drive not above draw", func(m, p *components.Organism) {}, 5, false, 1},
		{"opposite sex takes no draw", func(m, p *components.Organism) { p.Traits.Sex = 1 }, 0, false, 0},
		{"mover too weak", func(m, p *components.Organism) { m.Health = 10 }, 0, false, 1},
		{"partner too weak", func(m, p *components.Organism) { p.Health = 10 }, 0, false, 1},
		{"mover too young", func(m, p *components.Organism) { m.Age = 9 }, 0, false, 1},
		{"partner too young", func(m, p *components.Organism) { p.Age = 9 }, 0, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, p := base()
			tt.mutate(m, p)
			rng := &seqRand{draws: []int{tt.draw}}
			if got := CanMate(m, p, r, rng); got != tt.want {
				t.Errorf("CanMate() = %v, want %v", got, tt.want)
			}
			if rng.calls != tt.wantCalls {
				t.Errorf("draws = %d, want %d", rng.calls, tt.wantCalls)
			}
		})
	}
}

func breedingPair(t *testing.T, s *Store) (mother, father components.OrganismID) {
	t.Helper()
	mother = addOrganism(t, s, components.Pos{X: 1, Y: 1}, 100, 20,
		traits.Traits{Vision: 3, Speed: 1, Drive: 16, Aggression: 5})
	father = addOrganism(t, s, components.Pos{X: 2, Y: 1}, 61, 20,
		traits.Traits{Vision: 4, Speed: 2, Drive: 9, Aggression: 0})
	return mother, father
}

func TestBreed(t *testing.T) {
	g := testGrid(4, 4)
	s := NewStore(g)
	r := testRules()
	mother, father := breedingPair(t, s)
	trigger := g.Index(components.Pos{X: 1, Y: 1})

	// Sex draw, then a mutation draw that misses
	id, res := Breed(s, mother, father, trigger, r, &seqRand{draws: []int{1, 99}})
	if res != Born {
		t.Fatalf("Breed() result = %s, want born", res)
	}
	child, ok := s.Get(id)
	if !ok {
		t.Fatal("child not alive")
	}

	want := traits.Traits{Sex: 1, Vision: 3, Speed: 1, Drive: 12, Aggression: 2}
	if child.Traits != want {
		t.Errorf("child traits = %+v, want %+v", child.Traits, want)
	}
	if child.Health != 80 {
		t.Errorf("child health = %d, want 80", child.Health)
	}
	if child.Drift != 0 {
		t.Errorf("child drift = %s, want none", child.Drift)
	}
	if child.Age != 0 {
		t.Errorf("child age = %d, want 0", child.Age)
	}
	// Nearest empty cell scanning backward from the trigger
	if got := g.Index(child.Pos); got != trigger-1 {
		t.Errorf("child cell = %d, want %d", got, trigger-1)
	}

	m, _ := s.Get(mother)
	f, _ := s.Get(father)
	if m.Health != 90 || f.Health != 51 {
		t.Errorf("parent health = %d, %d; want 90, 51", m.Health, f.Health)
	}
	// Paying the cost rewrites each parent's code and cell
	for _, id := range []components.OrganismID{mother, father} {
		o := s.At(id)
		if want := traits.Encode(o.Traits, o.Health); o.Genome != want {
			t.Errorf("parent %d genome = %s, want %s", id, o.Genome, want)
		}
		if c := g.Cell(g.Index(o.Pos)).Color; c != o.Genome.Color() || c.A != o.Health {
			t.Errorf("parent %d cell color = %+v, want alpha %d", id, c, o.Health)
		}
	}
	checkOccupancy(t, g, s)
}

func TestBreedMutation(t *testing.T) {
	g := testGrid(4, 4)
	s := NewStore(g)
	r := testRules()
	mother, father := breedingPair(t, s)

	id, res := Breed(s, mother, father, 5, r, &seqRand{draws: []int{0, 29, 5}})
	if res != Born {
		t.Fatalf("Breed() result = %s, want born", res)
	}
	child := s.At(id)
	if child.Drift != traits.Genome(1)<<5 {
		t.Errorf("drift = %s, want bit 5", child.Drift)
	}
	if child.Genome != traits.Encode(child.Traits, child.Health)^child.Drift {
		t.Errorf("genome %s does not carry drift", child.Genome)
	}
	if g.Cell(g.Index(child.Pos)).Color != child.Genome.Color() {
		t.Error("cell color does not match mutated genome")
	}
}

func TestBreedMutationRate(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		draw      int
		want      bool
	}{
		{"default rate hits", 30, 29, true},
		{"default rate misses", 30, 30, false},
		{"raised rate hits", 70, 69, true},
		{"raised rate misses", 70, 70, false},
		{"disabled", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGrid(4, 4)
			s := NewStore(g)
			r := testRules()
			r.MutationThreshold = tt.threshold
			mother, father := breedingPair(t, s)

			id, res := Breed(s, mother, father, 5, r, &seqRand{draws: []int{0, tt.draw, 7}})
			if res != Born {
				t.Fatalf("Breed() result = %s, want born", res)
			}
			if got := s.At(id).Drift != 0; got != tt.want {
				t.Errorf("mutated = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBreedNoRoom(t *testing.T) {
	g := testGrid(3, 1)
	s := NewStore(g)
	r := testRules()
	mother := addOrganism(t, s, components.Pos{X: 0}, 100, 20, traits.Traits{})
	father := addOrganism(t, s, components.Pos{X: 1}, 100, 20, traits.Traits{})
	g.PlaceResource(2, components.KindFood)

	id, res := Breed(s, mother, father, 0, r, &seqRand{fallback: 99})
	if res != NoRoom || id != components.NoOrganism {
		t.Fatalf("Breed() = %d, %s; want none, no_room", id, res)
	}
	m, _ := s.Get(mother)
	f, _ := s.Get(father)
	if m.Health != 90 || f.Health != 90 {
		t.Errorf("parents did not pay: %d, %d", m.Health, f.Health)
	}
	if _, ok := s.FindFreeSlot(); !ok {
		t.Error("reserved slot was not released")
	}
	checkOccupancy(t, g, s)
}

func TestBreedExhausted(t *testing.T) {
	g := testGrid(2, 1)
	s := NewStore(g)
	r := testRules()
	mother := addOrganism(t, s, components.Pos{X: 0}, 100, 20, traits.Traits{})
	father := addOrganism(t, s, components.Pos{X: 1}, 100, 20, traits.Traits{})

	rng := &seqRand{}
	_, res := Breed(s, mother, father, 0, r, rng)
	if res != Exhausted {
		t.Fatalf("Breed() result = %s, want exhausted", res)
	}
	m, _ := s.Get(mother)
	f, _ := s.Get(father)
	if m.Health != 100 || f.Health != 100 {
		t.Errorf("parents paid on exhaustion: %d, %d", m.Health, f.Health)
	}
	if rng.calls != 0 {
		t.Errorf("draws = %d, want 0", rng.calls)
	}
}

func TestBreedKillsSpentParent(t *testing.T) {
	g := testGrid(4, 4)
	s := NewStore(g)
	r := testRules()
	r.MatingCost = 20
	mother := addOrganism(t, s, components.Pos{X: 1, Y: 1}, 15, 20, traits.Traits{})
	father := addOrganism(t, s, components.Pos{X: 2, Y: 1}, 100, 20, traits.Traits{})

	_, res := Breed(s, mother, father, 5, r, &seqRand{fallback: 99})
	if res != Born {
		t.Fatalf("Breed() result = %s, want born", res)
	}
	if _, ok := s.Get(mother); ok {
		t.Error("mother should have died")
	}
	if s.Deaths() != 1 {
		t.Errorf("Deaths() = %d, want 1", s.Deaths())
	}
	if _, ok := g.Occupant(5); ok {
		t.Error("mother's cell not cleared")
	}
	checkOccupancy(t, g, s)
}

func TestBreedDeadParent(t *testing.T) {
	g := testGrid(4, 4)
	s := NewStore(g)
	r := testRules()
	mother, father := breedingPair(t, s)
	s.Kill(mother)

	rng := &seqRand{}
	id, res := Breed(s, mother, father, 5, r, rng)
	if res != NoParent || id != components.NoOrganism {
		t.Fatalf("Breed() = %d, %s; want none, no_parent", id, res)
	}
	if res.String() != "no_parent" {
		t.Errorf("String() = %q", res.String())
	}
	if f, _ := s.Get(father); f.Health != 61 {
		t.Errorf("father paid with a dead partner: health %d", f.Health)
	}
	if rng.calls != 0 {
		t.Errorf("draws = %d, want 0", rng.calls)
	}
	if _, ok := s.FindFreeSlot(); !ok {
		t.Error("dead mother's slot should stay free")
	}
}
