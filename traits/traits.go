// Package traits defines organism heritable traits and their packed genome code.
package traits

// Trait ranges (inclusive).
const (
	MaxVision     = 4
	MaxSpeed      = 4
	MaxDrive      = 16
	MaxAggression = 16
	MaxHealth     = 255
)

// Rand is the randomness the rules consume. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Traits holds the heritable, behavior-driving values of an organism.
// Sex is 0 or 1.
type Traits struct {
	Sex        uint8
	Vision     uint8 // Foraging radius, 0 = blind
	Speed      uint8 // Encoded in the genome, not consumed by movement
	Drive      uint8 // Propensity to mate with a same-sex neighbor
	Aggression uint8 // Propensity to fight an opposite-sex neighbor
}

// Random draws a full set of traits uniformly over their ranges.
// Draw order is sex, vision, speed, drive, aggression.
func Random(rng Rand) Traits {
	return Traits{
		Sex:        uint8(rng.Intn(2)),
		Vision:     uint8(rng.Intn(MaxVision + 1)),
		Speed:      uint8(rng.Intn(MaxSpeed + 1)),
		Drive:      uint8(rng.Intn(MaxDrive + 1)),
		Aggression: uint8(rng.Intn(MaxAggression + 1)),
	}
}

// Crossover floor-averages the parents' traits. Sex is drawn independently.
func Crossover(mother, father Traits, rng Rand) Traits {
	return Traits{
		Sex:        uint8(rng.Intn(2)),
		Vision:     avg(mother.Vision, father.Vision),
		Speed:      avg(mother.Speed, father.Speed),
		Drive:      avg(mother.Drive, father.Drive),
		Aggression: avg(mother.Aggression, father.Aggression),
	}
}

// SameSex reports whether two trait sets share a sex.
func (t Traits) SameSex(other Traits) bool {
	return t.Sex == other.Sex
}

// AverageHealth floor-averages two health values.
func AverageHealth(a, b uint8) uint8 {
	return avg(a, b)
}

func avg(a, b uint8) uint8 {
	return uint8((int(a) + int(b)) / 2)
}
