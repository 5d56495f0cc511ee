package components

import (
	"log/slog"

	"github.com/pthm-cable/bugworld/traits"
)

// Organism holds the full state of one bug.
type Organism struct {
	Pos    Pos
	Alive  bool
	Age    int   // Ticks alive, reset to 0 on death
	Health uint8 // 0 is fatal

	Traits traits.Traits
	Drift  traits.Genome // Birth mutation mask, xored into the code
	Genome traits.Genome // Cache of Encode(Traits, Health) ^ Drift
}

// Refresh recomputes the genome cache from the current traits and health.
func (o *Organism) Refresh() {
	o.Genome = traits.Encode(o.Traits, o.Health) ^ o.Drift
}

// Heal adds health, saturating at the maximum.
func (o *Organism) Heal(amount int) {
	o.Health = ClampHealth(int(o.Health) + amount)
}

// Damage removes health, saturating at zero. Returns true if health reached zero.
func (o *Organism) Damage(amount int) bool {
	o.Health = ClampHealth(int(o.Health) - amount)
	return o.Health == 0
}

// ClampHealth bounds a health value to [0, 255].
func ClampHealth(h int) uint8 {
	if h < 0 {
		return 0
	}
	if h > traits.MaxHealth {
		return traits.MaxHealth
	}
	return uint8(h)
}

// LogValue implements slog.LogValuer for structured logging.
func (o Organism) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("x", o.Pos.X),
		slog.Int("y", o.Pos.Y),
		slog.Bool("alive", o.Alive),
		slog.Int("age", o.Age),
		slog.Int("health", int(o.Health)),
		slog.Int("sex", int(o.Traits.Sex)),
		slog.Int("vision", int(o.Traits.Vision)),
		slog.Int("speed", int(o.Traits.Speed)),
		slog.Int("drive", int(o.Traits.Drive)),
		slog.Int("aggression", int(o.Traits.Aggression)),
		slog.String("genome", o.Genome.String()),
	)
}
