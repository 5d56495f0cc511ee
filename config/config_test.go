package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("world = %dx%d, want 800x600", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Derived.CellCount != 800*600 {
		t.Errorf("CellCount = %d, want %d", cfg.Derived.CellCount, 800*600)
	}
	if cfg.Rules.TraitCeiling != 16 {
		t.Errorf("TraitCeiling = %d, want 16", cfg.Rules.TraitCeiling)
	}
}

func TestDerivedThresholds(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"init bug", cfg.Derived.InitBugThreshold, 11},
		{"init food", cfg.Derived.InitFoodThreshold, 50},
		{"init poison", cfg.Derived.InitPoisonThreshold, 1},
		{"regen food", cfg.Derived.RegenFoodThreshold, 40},
		{"regen poison", cfg.Derived.RegenPoisonThreshold, 1},
		{"move cost", cfg.Derived.MoveCostThreshold, 100},
		{"mutation", cfg.Derived.MutationThreshold, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("threshold = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := "world:\n  width: 64\n  height: 32\nrules:\n  mating_cost: 20\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.World.Width != 64 || cfg.World.Height != 32 {
		t.Errorf("world = %dx%d, want 64x32", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Rules.MatingCost != 20 {
		t.Errorf("MatingCost = %d, want 20", cfg.Rules.MatingCost)
	}
	// Untouched fields keep their defaults
	if cfg.Rules.FightingCost != 50 {
		t.Errorf("FightingCost = %d, want default 50", cfg.Rules.FightingCost)
	}
	if cfg.Derived.CellCount != 64*32 {
		t.Errorf("CellCount = %d, want %d", cfg.Derived.CellCount, 64*32)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults ok", func(c *Config) {}, ""},
		{"zero width", func(c *Config) { c.World.Width = 0 }, "world size"},
		{"bad food rate", func(c *Config) { c.Regen.FoodRate = 1.5 }, "regen.food_rate"},
		{"negative mutation", func(c *Config) { c.Mutation.Rate = -0.1 }, "mutation.rate"},
		{"zero ceiling", func(c *Config) { c.Rules.TraitCeiling = 0 }, "trait_ceiling"},
		{"negative cost", func(c *Config) { c.Rules.PoisonCost = -1 }, "negative"},
		{"zero window", func(c *Config) { c.Telemetry.WindowTicks = 0 }, "window_ticks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Defaults()
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Rules.FoodHealth = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Rules.FoodHealth != 7 {
		t.Errorf("FoodHealth = %d, want 7", loaded.Rules.FoodHealth)
	}
	if loaded.Derived.Food != cfg.Derived.Food {
		t.Errorf("food color = %v, want %v", loaded.Derived.Food, cfg.Derived.Food)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cp := cfg.Clone()
	cp.Rules.MoveCost = 99
	if cfg.Rules.MoveCost == 99 {
		t.Error("Clone shares state with original")
	}
}
