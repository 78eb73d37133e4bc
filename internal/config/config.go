// Package config provides YAML-based game configuration loading and
// difficulty presets for Gem Crossing.
package config

// CrossingConfig contains all tunable rules of the crossing game.
type CrossingConfig struct {
	Gameplay   CrossingGameplay `yaml:"gameplay"`
	Scoring    CrossingScoring  `yaml:"scoring"`
	Enemies    CrossingEnemies  `yaml:"enemies"`
	Heart      CrossingHeart    `yaml:"heart"`
	Difficulty string           `yaml:"difficulty"` // Preset name recorded with scores
}

// CrossingGameplay defines session-level rules.
type CrossingGameplay struct {
	Lives             int  `yaml:"lives"`
	MaxLevel          int  `yaml:"max_level"`       // Clearing this level wins the game
	InitialEnemies    int  `yaml:"initial_enemies"` // Roster size on a full reset
	DeathPenalty      int  `yaml:"death_penalty"`
	LevelLoadMS       int  `yaml:"level_load_ms"`
	ToastMS           int  `yaml:"toast_ms"`
	ReselectOnRestart bool `yaml:"reselect_on_restart"`
}

// CrossingScoring defines collectible values.
type CrossingScoring struct {
	Gem   int `yaml:"gem"`
	Key   int `yaml:"key"`
	Heart int `yaml:"heart"`
}

// CrossingEnemies defines enemy speeds and the hit band.
type CrossingEnemies struct {
	Speeds             []float64 `yaml:"speeds"`        // Ascending, cells per second
	SpeedSpan          int       `yaml:"speed_span"`    // Highest index at level 0
	LevelScaling       bool      `yaml:"level_scaling"` // Widen the speed range by one per level
	CollisionTolerance float64   `yaml:"collision_tolerance"`
}

// CrossingHeart defines how often the extra-life heart shows up.
type CrossingHeart struct {
	Odds     int `yaml:"odds"`      // Scale of the per-tick roll
	LevelCap int `yaml:"level_cap"` // Roll range shrinks as level approaches this
	MaxLives int `yaml:"max_lives"` // No hearts at or above this many lives
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
