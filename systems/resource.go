package systems

import "github.com/pthm-cable/bugworld/components"

// RNG is the interface for random number generation.
type RNG interface {
	Intn(n int) int
}

// Regenerate grows resources on empty cells. Each empty cell becomes food
// if a draw out of RegenScale falls under foodThreshold, otherwise poison
// if a second draw falls under poisonThreshold. Returns the number of
// food and poison cells created.
func (g *Grid) Regenerate(foodThreshold, poisonThreshold int, rng RNG) (food, poison int) {
	for i, k := range g.kinds {
		if k != components.KindEmpty {
			continue
		}
		if rng.Intn(RegenScale) < foodThreshold {
			g.PlaceResource(i, components.KindFood)
			food++
		} else if rng.Intn(RegenScale) < poisonThreshold {
			g.PlaceResource(i, components.KindPoison)
			poison++
		}
	}
	return food, poison
}
