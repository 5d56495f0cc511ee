package systems

import "github.com/pthm-cable/bugworld/components"

// Eat applies the effect of landing on a resource cell.
// Food heals up to the health cap; poison damages down to zero.
// Returns true if the organism's health reached zero.
func Eat(o *components.Organism, kind components.Kind, r Rules) bool {
	switch kind {
	case components.KindFood:
		o.Heal(r.FoodHealth)
	case components.KindPoison:
		return o.Damage(r.PoisonCost)
	}
	return false
}
