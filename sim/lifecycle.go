package sim

import (
	"log/slog"

	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/systems"
)

// Draw scales for world seeding.
const (
	seedBugScale    = 10000
	seedFoodScale   = 100
	seedPoisonScale = 1000
)

// Seed populates an empty world. Each cell is tried for an organism first,
// then food, then poison. A non-nil noise field modulates the food
// probability per cell. Publishes the initial snapshot.
func (s *Simulation) Seed(noise *systems.FoodNoise) {
	d := s.cfg.Derived
	for i := 0; i < s.grid.Len(); i++ {
		if s.rng.Intn(seedBugScale) < d.InitBugThreshold {
			if _, ok := s.store.Spawn(i, s.rng); !ok {
				slog.Warn("organism store full while seeding", "cell", i)
			}
			continue
		}

		p := s.grid.PosOf(i)
		foodThreshold := noise.Threshold(d.InitFoodThreshold, seedFoodScale, p.X, p.Y)
		if s.rng.Intn(seedFoodScale) < foodThreshold {
			s.grid.PlaceResource(i, components.KindFood)
		} else if s.rng.Intn(seedPoisonScale) < d.InitPoisonThreshold {
			s.grid.PlaceResource(i, components.KindPoison)
		}
	}
	s.publish()

	slog.Info("world seeded",
		"width", s.grid.Width(),
		"height", s.grid.Height(),
		"bugs", s.snapshot.Alive,
		"food", s.snapshot.Food,
		"poison", s.snapshot.Poison,
	)
}
