package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in rules of the classic game.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Gameplay: CrossingGameplay{
			Lives:             3,
			MaxLevel:          10,
			InitialEnemies:    4,
			DeathPenalty:      30,
			LevelLoadMS:       2000,
			ToastMS:           1000,
			ReselectOnRestart: false,
		},
		Scoring: CrossingScoring{
			Gem:   15,
			Key:   25,
			Heart: 20,
		},
		Enemies: CrossingEnemies{
			Speeds: []float64{
				1, 1.3, 1.6, 1.9, 2.2, 2.5, 2.8,
				3.1, 3.4, 3.7, 4.0, 4.2, 4.4, 4.6,
			},
			SpeedSpan:          4,
			LevelScaling:       true,
			CollisionTolerance: 0.7,
		},
		Heart: CrossingHeart{
			Odds:     1200,
			LevelCap: 14,
			MaxLives: 6,
		},
		Difficulty: string(DifficultyNormal),
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	default:
		return nil
	}
}
