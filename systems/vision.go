package systems

import (
	"math"

	"github.com/pthm-cable/bugworld/components"
)

// Tally holds the foraging score on each side of an observer.
type Tally struct {
	Left, Right, Up, Down float64
}

// cellScore values a cell for an observer. Other organisms are worth
// approaching by the observer's own drive plus aggression, since it cannot
// tell mate from rival before contact.
func cellScore(kind components.Kind, observer *components.Organism, r Rules) float64 {
	switch kind {
	case components.KindFood:
		return float64(r.FoodHealth)
	case components.KindPoison:
		return -float64(r.PoisonCost)
	case components.KindOccupied:
		return float64(int(observer.Traits.Aggression) + int(observer.Traits.Drive))
	}
	return 0
}

// Look scores the observer's vision block. A cell on the observer's column
// counts toward neither left nor right; a cell on its row counts toward
// neither up nor down.
func Look(g *Grid, observer *components.Organism, r Rules) Tally {
	var t Tally
	g.Scan(observer.Pos, int(observer.Traits.Vision), func(dx, dy int, kind components.Kind) {
		v := cellScore(kind, observer, r)
		if v == 0 {
			return
		}
		switch {
		case dx < 0:
			t.Left += v
		case dx > 0:
			t.Right += v
		}
		switch {
		case dy < 0:
			t.Up += v
		case dy > 0:
			t.Down += v
		}
	})
	return t
}

// NegativeProbability is the softmax weight of the negative direction:
// exp(a*neg) / (exp(a*neg) + exp(a*pos)). Equal scores give exactly 0.5.
func NegativeProbability(neg, pos, alpha float64) float64 {
	return 1 / (1 + math.Exp(alpha*(pos-neg)))
}

// Percent truncates a probability to a whole percentage.
func Percent(p float64) int {
	return int(p * PercentScale)
}
