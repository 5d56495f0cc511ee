package inspector

import (
	"fmt"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/sim"
	"github.com/pthm-cable/bugworld/systems"
)

// View is the inspector's picture of one organism.
type View struct {
	ID      int    `inspect:"label"`
	Cell    string `inspect:"label"`
	Age     int    `inspect:"label"`
	Health  uint8  `inspect:"bar,max:255,fmt:%d"`
	Sex     uint8  `inspect:"label"`
	Mutated bool   `inspect:"bool"`
	Genome  uint32 `inspect:"label,fmt:%08x"`

	Vision     uint8 `inspect:"bar,max:4,fmt:%d"`
	Speed      uint8 `inspect:"bar,max:4,fmt:%d"`
	Drive      uint8 `inspect:"bar,max:16,fmt:%d"`
	Aggression uint8 `inspect:"bar,max:16,fmt:%d"`

	// What the organism sees this tick
	Tally     systems.Tally `inspect:"skip"`
	LeftProb  float64       `inspect:"bar,max:1,name:Step left"`
	UpProb    float64       `inspect:"bar,max:1,name:Step up"`
	BlindWalk bool          `inspect:"bool,name:Random walk"`
}

// Describe builds the view of organism id. ok is false once the organism
// has died or its slot was reused by a stranger.
func Describe(s *sim.Simulation, id components.OrganismID) (View, bool) {
	o, ok := s.Store().Get(id)
	if !ok {
		return View{}, false
	}

	r := s.Rules()
	t := systems.Look(s.Grid(), o, r)
	return View{
		ID:         int(id),
		Cell:       fmt.Sprintf("(%d, %d)", o.Pos.X, o.Pos.Y),
		Age:        o.Age,
		Health:     o.Health,
		Sex:        o.Traits.Sex,
		Mutated:    o.Drift != 0,
		Genome:     uint32(o.Genome),
		Vision:     o.Traits.Vision,
		Speed:      o.Traits.Speed,
		Drive:      o.Traits.Drive,
		Aggression: o.Traits.Aggression,
		Tally:      t,
		LeftProb:   systems.NegativeProbability(t.Left, t.Right, r.Alpha),
		UpProb:     systems.NegativeProbability(t.Up, t.Down, r.Alpha),
		BlindWalk:  o.Traits.Vision == 0,
	}, true
}

// traitFields splits the view into identity and trait sections.
func traitFields(v View) (identity, genes, senses []Field) {
	for _, f := range ExtractFields(v) {
		switch f.Name {
		case "Vision", "Speed", "Drive", "Aggression":
			genes = append(genes, f)
		case "Step left", "Step up", "Random walk":
			senses = append(senses, f)
		default:
			identity = append(identity, f)
		}
	}
	return identity, genes, senses
}
