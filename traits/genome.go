package traits

import (
	"image/color"
	"strings"
)

// Genome is the packed 32-bit trait code. It doubles as the display color.
//
// Layout (bit ranges inclusive):
//
//	31     sex
//	28..30 vision
//	25..27 speed
//	20..24 drive
//	15..19 aggression
//	8..14  pad (all ones)
//	0..7   health
//
// Field widths cover the full trait ranges so distinct trait tuples never
// alias. The code is write-only: nothing decodes it back into traits.
type Genome uint32

// Bit offsets and masks.
const (
	sexShift    = 31
	visionShift = 28
	speedShift  = 25
	driveShift  = 20
	aggrShift   = 15
	padShift    = 8

	sexMask    = 0x01
	visionMask = 0x07
	speedMask  = 0x07
	driveMask  = 0x1f
	aggrMask   = 0x1f
	padValue   = 0x7f

	Bits = 32
)

// Encode packs traits and health into a genome code.
func Encode(t Traits, health uint8) Genome {
	var g uint32
	g |= uint32(t.Sex&sexMask) << sexShift
	g |= uint32(t.Vision&visionMask) << visionShift
	g |= uint32(t.Speed&speedMask) << speedShift
	g |= uint32(t.Drive&driveMask) << driveShift
	g |= uint32(t.Aggression&aggrMask) << aggrShift
	g |= uint32(padValue) << padShift
	g |= uint32(health)
	return Genome(g)
}

// Color maps the code onto RGBA, high byte first. Health lands in alpha,
// so weakened organisms fade.
func (g Genome) Color() color.RGBA {
	return color.RGBA{
		R: uint8(g >> 24),
		G: uint8(g >> 16),
		B: uint8(g >> 8),
		A: uint8(g),
	}
}

// Flip toggles a single bit.
func (g Genome) Flip(bit int) Genome {
	return g ^ Genome(1)<<uint(bit%Bits)
}

// Mutation returns a drift mask with one random bit set.
func Mutation(rng Rand) Genome {
	return Genome(0).Flip(rng.Intn(Bits))
}

// String renders the code as bits in byte groups, most significant first.
func (g Genome) String() string {
	var b strings.Builder
	for i := Bits - 1; i >= 0; i-- {
		if (g>>uint(i))&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		if i%8 == 0 && i > 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
