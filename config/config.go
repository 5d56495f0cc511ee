// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Init      InitConfig      `yaml:"init"`
	Regen     RegenConfig     `yaml:"regen"`
	Rules     RulesConfig     `yaml:"rules"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Colors    ColorsConfig    `yaml:"colors"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the grid dimensions in cells.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InitConfig holds the per-cell probabilities used when seeding a fresh world.
// Each cell is tried for an organism first, then food, then poison.
type InitConfig struct {
	BugProb        float64 `yaml:"bug_prob"`
	FoodProb       float64 `yaml:"food_prob"`
	PoisonProb     float64 `yaml:"poison_prob"`
	FoodNoiseScale float64 `yaml:"food_noise_scale"` // 0 = uniform food, >0 = simplex-clustered food
}

// RegenConfig holds per-tick resource regeneration probabilities for empty cells.
type RegenConfig struct {
	FoodRate   float64 `yaml:"food_rate"`
	PoisonRate float64 `yaml:"poison_rate"`
}

// RulesConfig holds the organism rule constants.
type RulesConfig struct {
	FoodHealth     int     `yaml:"food_health"`      // Health gained from a food cell
	PoisonCost     int     `yaml:"poison_cost"`      // Health lost on a poison cell
	MoveCost       int     `yaml:"move_cost"`        // Health lost per move
	MoveCostProb   float64 `yaml:"move_cost_prob"`   // Probability the move cost is charged
	MatingCost     int     `yaml:"mating_cost"`      // Health paid by each parent
	MinMatingAge   int     `yaml:"min_mating_age"`   // Ticks
	MinFightingAge int     `yaml:"min_fighting_age"` // Ticks
	FightingCost   int     `yaml:"fighting_cost"`    // Subtracted from the winner's pooled health
	TraitCeiling   int     `yaml:"trait_ceiling"`    // Draw range for drive/aggression checks
	Alpha          float64 `yaml:"alpha"`            // Softmax scaling for foraging scores
}

// MutationConfig holds mutation parameters.
type MutationConfig struct {
	Rate float64 `yaml:"rate"` // Probability a newborn carries a single flipped genome bit
}

// RGBA is a YAML-friendly color.
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// ColorsConfig holds display colors for non-organism cells.
type ColorsConfig struct {
	Background RGBA `yaml:"background"`
	Food       RGBA `yaml:"food"`
	Poison     RGBA `yaml:"poison"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int    `yaml:"window_ticks"` // Ticks per births/fights/deaths window
	LogPath     string `yaml:"log_path"`     // Per-tick metrics log
}

// DerivedConfig holds computed values derived from the loaded config.
// Probabilities become integer thresholds compared against uniform draws
// in [0, scale), matching how the rules consume randomness.
type DerivedConfig struct {
	CellCount int

	InitBugThreshold    int // out of 10000
	InitFoodThreshold   int // out of 100
	InitPoisonThreshold int // out of 1000

	RegenFoodThreshold   int // out of 10000
	RegenPoisonThreshold int // out of 10000

	MoveCostThreshold int // out of 100
	MutationThreshold int // out of 100

	Background color.RGBA
	Food       color.RGBA
	Poison     color.RGBA
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Defaults returns a fresh copy of the embedded defaults with derived values filled in.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

// Clone returns a copy that can be tweaked without touching the global configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate rejects configurations the simulation cannot run.
func (c *Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	probs := []struct {
		name string
		p    float64
	}{
		{"init.bug_prob", c.Init.BugProb},
		{"init.food_prob", c.Init.FoodProb},
		{"init.poison_prob", c.Init.PoisonProb},
		{"regen.food_rate", c.Regen.FoodRate},
		{"regen.poison_rate", c.Regen.PoisonRate},
		{"rules.move_cost_prob", c.Rules.MoveCostProb},
		{"mutation.rate", c.Mutation.Rate},
	}
	for _, pr := range probs {
		if pr.p < 0 || pr.p > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", pr.name, pr.p))
		}
	}
	if c.Rules.TraitCeiling <= 0 {
		errs = append(errs, fmt.Errorf("rules.trait_ceiling must be positive, got %d", c.Rules.TraitCeiling))
	}
	if c.Rules.FoodHealth < 0 || c.Rules.PoisonCost < 0 || c.Rules.MoveCost < 0 ||
		c.Rules.MatingCost < 0 || c.Rules.FightingCost < 0 {
		errs = append(errs, errors.New("rule costs must not be negative"))
	}
	if c.Telemetry.WindowTicks < 1 {
		errs = append(errs, fmt.Errorf("telemetry.window_ticks must be at least 1, got %d", c.Telemetry.WindowTicks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CellCount = c.World.Width * c.World.Height

	c.Derived.InitBugThreshold = threshold(c.Init.BugProb, 10000)
	c.Derived.InitFoodThreshold = threshold(c.Init.FoodProb, 100)
	c.Derived.InitPoisonThreshold = threshold(c.Init.PoisonProb, 1000)

	c.Derived.RegenFoodThreshold = threshold(c.Regen.FoodRate, 10000)
	c.Derived.RegenPoisonThreshold = threshold(c.Regen.PoisonRate, 10000)

	c.Derived.MoveCostThreshold = threshold(c.Rules.MoveCostProb, 100)
	c.Derived.MutationThreshold = threshold(c.Mutation.Rate, 100)

	c.Derived.Background = c.Colors.Background.Color()
	c.Derived.Food = c.Colors.Food.Color()
	c.Derived.Poison = c.Colors.Poison.Color()
}

// Recompute refreshes derived values after fields were changed in code.
func (c *Config) Recompute() {
	c.computeDerived()
}

// threshold converts a probability into an integer cutoff out of scale.
func threshold(p float64, scale int) int {
	return int(math.Round(p * float64(scale)))
}

// Color converts to the standard library color type.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
