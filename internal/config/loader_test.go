package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultCrossingConfig()
	var embedded CrossingConfig
	if err := yaml.Unmarshal(GetDefaultYAML("crossing"), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, embedded) {
		t.Errorf("embedded defaults drifted from DefaultCrossingConfig:\n got %+v\nwant %+v", embedded, cfg)
	}
}

func TestLoadCrossingFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 3 || cfg.Scoring.Gem != 15 || cfg.Scoring.Key != 25 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadCrossingUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".crossing", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "crossing.yaml"), []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7 from user config", cfg.Gameplay.Lives)
	}
}

func TestLoadCrossingCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("scoring:\n  gem: 40\nenemies:\n  collision_tolerance: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}

	if cfg.Scoring.Gem != 40 {
		t.Errorf("Gem = %d, expected 40", cfg.Scoring.Gem)
	}
	if cfg.Enemies.CollisionTolerance != 0.5 {
		t.Errorf("CollisionTolerance = %v, expected 0.5", cfg.Enemies.CollisionTolerance)
	}
	// Untouched fields keep their defaults
	if cfg.Scoring.Key != 25 || cfg.Gameplay.MaxLevel != 10 || len(cfg.Enemies.Speeds) != 14 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadCrossingCustomPathErrors(t *testing.T) {
	if _, err := LoadCrossing(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(path); err == nil {
		t.Error("expected validation error for zero lives")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossingConfig)
		ok     bool
	}{
		{"defaults", func(*CrossingConfig) {}, true},
		{"no speeds", func(c *CrossingConfig) { c.Enemies.Speeds = nil }, false},
		{"board too small for level", func(c *CrossingConfig) { c.Gameplay.MaxLevel = 42; c.Heart.LevelCap = 50 }, false},
		{"heart cap below max level", func(c *CrossingConfig) { c.Heart.LevelCap = 10 }, false},
		{"negative enemies", func(c *CrossingConfig) { c.Gameplay.InitialEnemies = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	cfg := DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 || cfg.Enemies.SpeedSpan != 2 || cfg.Difficulty != "easy" {
		t.Errorf("easy preset not applied: %+v", cfg)
	}

	cfg = DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 || cfg.Gameplay.InitialEnemies != 6 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}

	cfg = DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, DifficultyFixed)
	if cfg.Enemies.LevelScaling {
		t.Error("fixed preset should disable level scaling")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset should mean normal, got %q %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q %v", p, ok)
	}
}
