package systems

import (
	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/traits"
)

// BirthResult is the outcome of a breeding attempt.
type BirthResult uint8

const (
	Born      BirthResult = iota // Newborn placed on the grid
	Exhausted                    // No slot left; nobody pays
	NoRoom                       // No empty cell; parents still pay
	NoParent                     // A parent reference was dead or out of range
)

// String returns the result name.
func (b BirthResult) String() string {
	switch b {
	case Born:
		return "born"
	case Exhausted:
		return "exhausted"
	case NoRoom:
		return "no_room"
	case NoParent:
		return "no_parent"
	}
	return "unknown"
}

// CanMate reports whether mover, having stepped onto partner, mates with it.
// The drive draw is taken first and only for same-sex pairs.
func CanMate(mover, partner *components.Organism, r Rules, rng RNG) bool {
	if !mover.Traits.SameSex(partner.Traits) {
		return false
	}
	if int(mover.Traits.Drive) <= rng.Intn(r.TraitCeiling) {
		return false
	}
	return int(mover.Health) > r.MatingCost &&
		int(partner.Health) > r.MatingCost &&
		mover.Age >= r.MinMatingAge &&
		partner.Age >= r.MinMatingAge
}

// Breed creates a child of mother and father and places it on the empty
// cell nearest to trigger. Parents pay the mating cost unless a parent is
// already dead or the store is exhausted; a parent brought to zero health
// is killed.
func Breed(s *Store, mother, father components.OrganismID, trigger int, r Rules, rng RNG) (components.OrganismID, BirthResult) {
	mom, okM := s.Get(mother)
	dad, okD := s.Get(father)
	if !okM || !okD {
		return components.NoOrganism, NoParent
	}

	id, ok := s.Alloc()
	if !ok {
		return components.NoOrganism, Exhausted
	}

	child := s.At(id)
	child.Health = traits.AverageHealth(mom.Health, dad.Health)
	child.Traits = traits.Crossover(mom.Traits, dad.Traits, rng)
	if rng.Intn(PercentScale) < r.MutationThreshold {
		child.Drift = traits.Mutation(rng)
	}

	result := NoRoom
	if cell, found := s.grid.FindEmptyNear(trigger); found {
		child.Pos = s.grid.PosOf(cell)
		child.Alive = true
		s.Place(id)
		result = Born
	} else {
		s.Release(id)
		id = components.NoOrganism
	}

	payMatingCost(s, mother, mom, r.MatingCost)
	payMatingCost(s, father, dad, r.MatingCost)
	return id, result
}

// payMatingCost charges a parent. A survivor is re-placed on its own cell
// so its genome and cell color carry the new health.
func payMatingCost(s *Store, id components.OrganismID, o *components.Organism, cost int) {
	if o.Damage(cost) {
		s.Kill(id)
		return
	}
	s.Place(id)
}
