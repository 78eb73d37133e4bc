package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// boardInteriorCells is the number of cells water can occupy (rows 1-6 of a 7-wide board).
const boardInteriorCells = 42

// LoadCrossing loads the crossing game configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
// Files only need to name the fields they change; everything else keeps its default.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("crossing.yaml"), filepath.Join("configs", "crossing.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultCrossingConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			continue
		}
		if fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing", "configs", filename)
}

// Validate reports rule combinations the game cannot run with.
func (c CrossingConfig) Validate() error {
	var errs []error
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("gameplay.lives must be positive"))
	}
	if c.Gameplay.MaxLevel <= 0 {
		errs = append(errs, errors.New("gameplay.max_level must be positive"))
	}
	// Every level floods `level` cells and collectibles need at least one dry cell.
	if c.Gameplay.MaxLevel >= boardInteriorCells {
		errs = append(errs, fmt.Errorf("gameplay.max_level must be below %d", boardInteriorCells))
	}
	if c.Gameplay.InitialEnemies < 0 {
		errs = append(errs, errors.New("gameplay.initial_enemies must not be negative"))
	}
	if len(c.Enemies.Speeds) == 0 {
		errs = append(errs, errors.New("enemies.speeds must not be empty"))
	}
	if c.Heart.LevelCap <= c.Gameplay.MaxLevel {
		errs = append(errs, errors.New("heart.level_cap must exceed gameplay.max_level"))
	}
	return errors.Join(errs...)
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	cfg.Difficulty = string(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.InitialEnemies = 3
		cfg.Enemies.SpeedSpan = 2
		cfg.Enemies.LevelScaling = true
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.InitialEnemies = 6
		cfg.Enemies.SpeedSpan = 6
		cfg.Enemies.LevelScaling = true
	case DifficultyFixed:
		cfg.Enemies.LevelScaling = false
	default:
		cfg.Enemies.LevelScaling = true
	}
}
