package systems

import "github.com/pthm-cable/bugworld/config"

// Draw scales used by the integer thresholds in Rules.
const (
	PercentScale = 100
	RegenScale   = 10000
)

// Rules holds the rule constants the systems consume, resolved from config
// into integer thresholds. Tests build it directly.
type Rules struct {
	FoodHealth   int
	PoisonCost   int
	MoveCost     int
	MatingCost   int
	FightingCost int

	MinMatingAge   int
	MinFightingAge int
	TraitCeiling   int // drive/aggression checks draw in [0, TraitCeiling)

	Alpha float64 // Foraging softmax scale

	MoveCostThreshold    int // out of PercentScale
	MutationThreshold    int // out of PercentScale
	RegenFoodThreshold   int // out of RegenScale
	RegenPoisonThreshold int // out of RegenScale
}

// NewRules resolves rules from a loaded config.
func NewRules(cfg *config.Config) Rules {
	return Rules{
		FoodHealth:   cfg.Rules.FoodHealth,
		PoisonCost:   cfg.Rules.PoisonCost,
		MoveCost:     cfg.Rules.MoveCost,
		MatingCost:   cfg.Rules.MatingCost,
		FightingCost: cfg.Rules.FightingCost,

		MinMatingAge:   cfg.Rules.MinMatingAge,
		MinFightingAge: cfg.Rules.MinFightingAge,
		TraitCeiling:   cfg.Rules.TraitCeiling,

		Alpha: cfg.Rules.Alpha,

		MoveCostThreshold:    cfg.Derived.MoveCostThreshold,
		MutationThreshold:    cfg.Derived.MutationThreshold,
		RegenFoodThreshold:   cfg.Derived.RegenFoodThreshold,
		RegenPoisonThreshold: cfg.Derived.RegenPoisonThreshold,
	}
}
