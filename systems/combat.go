package systems

import "github.com/pthm-cable/bugworld/components"

// CanFight reports whether attacker, having stepped onto defender, attacks.
// Attackers only strike when already healthier, so fights are never lost.
func CanFight(attacker, defender *components.Organism, r Rules, rng RNG) bool {
	if attacker.Traits.SameSex(defender.Traits) {
		return false
	}
	if int(attacker.Traits.Aggression) <= rng.Intn(r.TraitCeiling) {
		return false
	}
	return attacker.Age >= r.MinFightingAge && attacker.Health > defender.Health
}

// Fight resolves a fight: the defender drops to zero and the attacker
// absorbs its health minus the fighting cost.
func Fight(attacker, defender *components.Organism, r Rules) {
	pooled := int(attacker.Health) + int(defender.Health) - r.FightingCost
	defender.Health = 0
	attacker.Health = components.ClampHealth(pooled)
}
