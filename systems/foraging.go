package systems

import "github.com/pthm-cable/bugworld/components"

// Step chooses a one-cell displacement. Blind organisms random-walk over
// the Moore neighborhood; sighted ones pick each axis direction from their
// Tally. Speed does not scale the step.
func Step(g *Grid, o *components.Organism, r Rules, rng RNG) (dx, dy int) {
	if o.Traits.Vision == 0 {
		dx = rng.Intn(3) - 1
		dy = rng.Intn(3) - 1
		return dx, dy
	}

	t := Look(g, o, r)
	leftPct := Percent(NegativeProbability(t.Left, t.Right, r.Alpha))
	upPct := Percent(NegativeProbability(t.Up, t.Down, r.Alpha))

	dx = 1
	if rng.Intn(PercentScale) < leftPct {
		dx = -1
	}
	dy = 1
	if rng.Intn(PercentScale) < upPct {
		dy = -1
	}
	return dx, dy
}

// Move displaces the organism by one Step, wraps it onto the torus and
// charges the move cost. Returns the destination cell index.
// The organism's previous cell must already be evacuated.
func Move(g *Grid, o *components.Organism, r Rules, rng RNG) int {
	dx, dy := Step(g, o, r, rng)
	o.Pos = g.Wrap(o.Pos.Add(dx, dy))

	if rng.Intn(PercentScale) < r.MoveCostThreshold {
		o.Damage(r.MoveCost)
	}
	return g.Index(o.Pos)
}
