// Package sim holds the simulation state and the tick stepper.
package sim

import (
	"log/slog"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/config"
	"github.com/pthm-cable/bugworld/systems"
	"github.com/pthm-cable/bugworld/telemetry"
)

// Simulation owns the world grid, the organism store and the tick counter.
// It is driven from a single goroutine; readers get a Snapshot and the grid
// colors between ticks.
type Simulation struct {
	cfg   *config.Config
	rules systems.Rules
	rng   systems.RNG

	grid  *systems.Grid
	store *systems.Store

	tick      uint64
	snapshot  telemetry.Snapshot
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector // nil when not timing

	// Store deaths already reported to the collector
	deathsSeen int
}

// NewSimulation creates an empty world sized from cfg.
// Call Seed to populate it.
func NewSimulation(cfg *config.Config, rng systems.RNG) *Simulation {
	grid := systems.NewGrid(cfg.World.Width, cfg.World.Height, systems.PaletteFromConfig(cfg))
	return &Simulation{
		cfg:       cfg,
		rules:     systems.NewRules(cfg),
		rng:       rng,
		grid:      grid,
		store:     systems.NewStore(grid),
		collector: telemetry.NewCollector(cfg.Telemetry.WindowTicks),
	}
}

// Grid returns the world grid.
func (s *Simulation) Grid() *systems.Grid { return s.grid }

// Store returns the organism store.
func (s *Simulation) Store() *systems.Store { return s.store }

// Collector returns the window event collector.
func (s *Simulation) Collector() *telemetry.Collector { return s.collector }

// TickCount returns the number of completed ticks.
func (s *Simulation) TickCount() uint64 { return s.tick }

// SetPerf attaches a collector that times the phases of each tick.
// The caller brackets Tick with StartTick and EndTick.
func (s *Simulation) SetPerf(p *telemetry.PerfCollector) { s.perf = p }

// Snapshot returns the summary published after the last tick.
func (s *Simulation) Snapshot() telemetry.Snapshot { return s.snapshot }

// Tick advances the world one step: every living organism acts once in
// ascending slot order, then resources regrow and a snapshot is published.
// Slots appended by births during the loop are stepped in the same tick.
func (s *Simulation) Tick() telemetry.Snapshot {
	s.perf.StartPhase(telemetry.PhaseOrganisms)
	for i := 0; i < s.store.Len(); i++ {
		s.stepOrganism(components.OrganismID(i))
	}

	s.perf.StartPhase(telemetry.PhaseRegrowth)
	food, poison := s.grid.Regenerate(s.rules.RegenFoodThreshold, s.rules.RegenPoisonThreshold, s.rng)
	s.collector.RecordRegrowth(food, poison)

	deaths := s.store.Deaths()
	s.collector.RecordDeaths(deaths - s.deathsSeen)
	s.deathsSeen = deaths

	s.perf.StartPhase(telemetry.PhaseCensus)
	s.tick++
	s.publish()
	return s.snapshot
}

// publish refreshes the snapshot from the store and grid.
func (s *Simulation) publish() {
	c := s.store.Census()
	food, poison, _ := s.grid.Counts()
	s.snapshot = telemetry.Snapshot{
		Alive:          c.Alive,
		Tick:           s.tick,
		MeanHealth:     c.MeanHealth,
		MeanDrive:      c.MeanDrive,
		MeanAggression: c.MeanAggression,
		MeanVision:     c.MeanVision,
		MeanSpeed:      c.MeanSpeed,
		Food:           food,
		Poison:         poison,
	}
}

// stepOrganism runs one organism's turn: evacuate, move, then act on
// whatever the destination holds.
func (s *Simulation) stepOrganism(id components.OrganismID) {
	o := s.store.At(id)
	if !o.Alive {
		return
	}

	origin := o.Pos
	if occ, ok := s.grid.Occupant(s.grid.Index(origin)); ok && occ == id {
		s.grid.Clear(s.grid.Index(origin))
	}

	dest := systems.Move(s.grid, o, s.rules, s.rng)

	// Exhausted by the move itself
	if o.Health == 0 {
		if s.grid.Kind(dest) != components.KindOccupied {
			s.grid.Clear(dest)
		}
		s.store.Kill(id)
		return
	}

	switch kind := s.grid.Kind(dest); kind {
	case components.KindFood, components.KindPoison:
		if systems.Eat(o, kind, s.rules) {
			s.grid.Clear(dest)
			s.store.Kill(id)
			return
		}
	case components.KindOccupied:
		if !s.encounter(id, o, dest, origin) {
			return
		}
	}

	s.store.Place(id)
	o.Age++
}

// encounter resolves a move onto an occupied cell. The mover mates with a
// same-sex occupant or fights an opposite-sex one. If the occupant is still
// alive afterwards the mover returns to its origin. Returns false if the
// mover died.
func (s *Simulation) encounter(id components.OrganismID, o *components.Organism, dest int, origin components.Pos) bool {
	otherID, other, ok := s.store.OccupantOf(dest)
	if !ok {
		// Occupied cell with no living occupant: the occupancy invariant broke
		occ, _ := s.grid.Occupant(dest)
		slog.Warn("stale occupant cleared",
			"tick", s.tick,
			"cell", s.grid.PosOf(dest),
			"occupant", occ,
			"mover", id,
		)
		s.grid.Clear(dest)
		return true
	}

	switch {
	case systems.CanMate(o, other, s.rules, s.rng):
		// Back on the origin before the child looks for a cell
		o.Pos = origin
		s.store.Place(id)
		child, res := systems.Breed(s.store, otherID, id, dest, s.rules, s.rng)
		s.recordBirth(child, res)
		return o.Alive

	case systems.CanFight(o, other, s.rules, s.rng):
		systems.Fight(o, other, s.rules)
		s.collector.RecordFight()
		if other.Health == 0 {
			s.store.Kill(otherID)
		}
		if o.Health == 0 {
			s.store.Kill(id)
			return false
		}
	}

	if _, alive := s.store.Get(otherID); alive {
		o.Pos = origin
	}
	return true
}

// recordBirth counts a breeding outcome.
func (s *Simulation) recordBirth(child components.OrganismID, res systems.BirthResult) {
	switch res {
	case systems.Born:
		s.collector.RecordBirth()
		slog.Debug("birth", "tick", s.tick, "id", child)
	case systems.NoRoom:
		s.collector.RecordPlacementFailure()
		slog.Debug("no room for newborn", "tick", s.tick)
	case systems.Exhausted:
		s.collector.RecordExhausted()
		slog.Debug("organism store exhausted", "tick", s.tick, "slots", s.store.Len())
	case systems.NoParent:
		slog.Warn("breeding with a dead parent", "tick", s.tick)
	}
}

// Rules returns the resolved rule constants.
func (s *Simulation) Rules() systems.Rules { return s.rules }
