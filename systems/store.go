package systems

import (
	"container/heap"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/traits"
)

// freeSlots is a min-heap of dead slot indices.
type freeSlots []components.OrganismID

func (f freeSlots) Len() int           { return len(f) }
func (f freeSlots) Less(i, j int) bool { return f[i] < f[j] }
func (f freeSlots) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *freeSlots) Push(x any)        { *f = append(*f, x.(components.OrganismID)) }
func (f *freeSlots) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}

// Store owns every organism record. Dead slots are kept and reused,
// lowest index first, so slot order stays stable for the stepper.
// Records are boxed so pointers held across an Alloc stay valid.
type Store struct {
	grid *Grid
	orgs []*components.Organism

	free   freeSlots
	isFree []bool

	deaths int
}

// NewStore creates an empty store bound to a grid. The grid's cell count
// bounds the number of slots.
func NewStore(grid *Grid) *Store {
	return &Store{grid: grid}
}

// Len returns the number of slots, dead or alive. It grows during a tick
// when births append.
func (s *Store) Len() int { return len(s.orgs) }

// Capacity returns the maximum number of slots.
func (s *Store) Capacity() int { return s.grid.Len() }

// Deaths returns the total number of deaths since creation.
func (s *Store) Deaths() int { return s.deaths }

// At returns the record in slot id without checking liveness.
// Used by the stepper to walk every slot.
func (s *Store) At(id components.OrganismID) *components.Organism {
	return s.orgs[id]
}

// Get resolves a weak reference: it returns the organism only if id is in
// range and alive.
func (s *Store) Get(id components.OrganismID) (*components.Organism, bool) {
	if id < 0 || int(id) >= len(s.orgs) {
		return nil, false
	}
	o := s.orgs[id]
	if !o.Alive {
		return nil, false
	}
	return o, true
}

// OccupantOf resolves the organism placed on cell i.
func (s *Store) OccupantOf(i int) (components.OrganismID, *components.Organism, bool) {
	id, ok := s.grid.Occupant(i)
	if !ok {
		return components.NoOrganism, nil, false
	}
	o, ok := s.Get(id)
	if !ok {
		return components.NoOrganism, nil, false
	}
	return id, o, true
}

// FindFreeSlot returns the lowest dead slot, if any.
func (s *Store) FindFreeSlot() (components.OrganismID, bool) {
	if len(s.free) == 0 {
		return components.NoOrganism, false
	}
	return s.free[0], true
}

// Alloc reserves a slot, reusing the lowest dead one or appending.
// The returned record is zeroed and not alive. Returns false when no slot
// is free and the store already holds one slot per cell.
func (s *Store) Alloc() (components.OrganismID, bool) {
	if len(s.free) > 0 {
		id := heap.Pop(&s.free).(components.OrganismID)
		s.isFree[id] = false
		*s.orgs[id] = components.Organism{}
		return id, true
	}
	if len(s.orgs) >= s.Capacity() {
		return components.NoOrganism, false
	}
	s.orgs = append(s.orgs, &components.Organism{})
	s.isFree = append(s.isFree, false)
	return components.OrganismID(len(s.orgs) - 1), true
}

// Release returns an allocated slot that never came alive.
func (s *Store) Release(id components.OrganismID) {
	if id < 0 || int(id) >= len(s.orgs) || s.orgs[id].Alive || s.isFree[id] {
		return
	}
	s.markFree(id)
}

func (s *Store) markFree(id components.OrganismID) {
	s.isFree[id] = true
	heap.Push(&s.free, id)
}

// Place refreshes the organism's genome and writes it onto its cell.
func (s *Store) Place(id components.OrganismID) {
	o := s.orgs[id]
	o.Refresh()
	s.grid.PlaceOrganism(s.grid.Index(o.Pos), id, o.Genome.Color())
}

// Spawn creates an organism by spontaneous generation on cell i:
// random traits, full health.
func (s *Store) Spawn(i int, rng RNG) (components.OrganismID, bool) {
	id, ok := s.Alloc()
	if !ok {
		return components.NoOrganism, false
	}
	o := s.orgs[id]
	o.Pos = s.grid.PosOf(i)
	o.Alive = true
	o.Health = traits.MaxHealth
	o.Traits = traits.Random(rng)
	s.Place(id)
	return id, true
}

// Kill marks an organism dead and frees its slot. Its cell is cleared only
// if the cell still references it. Returns false if it was already dead.
func (s *Store) Kill(id components.OrganismID) bool {
	o, ok := s.Get(id)
	if !ok {
		return false
	}
	i := s.grid.Index(o.Pos)
	if occ, ok := s.grid.Occupant(i); ok && occ == id {
		s.grid.Clear(i)
	}
	o.Alive = false
	o.Age = 0
	s.markFree(id)
	s.deaths++
	return true
}

// Census aggregates the living population. Means use integer division.
type Census struct {
	Alive          int
	MeanHealth     int
	MeanVision     int
	MeanSpeed      int
	MeanDrive      int
	MeanAggression int
}

// Census scans every slot, skipping the dead.
func (s *Store) Census() Census {
	var c Census
	var health, vision, speed, drive, aggr int
	for _, o := range s.orgs {
		if !o.Alive {
			continue
		}
		c.Alive++
		health += int(o.Health)
		vision += int(o.Traits.Vision)
		speed += int(o.Traits.Speed)
		drive += int(o.Traits.Drive)
		aggr += int(o.Traits.Aggression)
	}
	if c.Alive == 0 {
		return c
	}
	c.MeanHealth = health / c.Alive
	c.MeanVision = vision / c.Alive
	c.MeanSpeed = speed / c.Alive
	c.MeanDrive = drive / c.Alive
	c.MeanAggression = aggr / c.Alive
	return c
}

// Healths returns the health of every living organism.
func (s *Store) Healths() []float64 {
	out := make([]float64, 0, len(s.orgs))
	for _, o := range s.orgs {
		if o.Alive {
			out = append(out, float64(o.Health))
		}
	}
	return out
}
