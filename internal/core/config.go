package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the frontend (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score, may be negative
	Level    int  // Level being played (1-based)
	Lives    int  // Lives left
	GameOver bool // Victory or defeat reached
	Won      bool // GameOver was a victory
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind string

const (
	EventPickup  EventKind = "pickup"
	EventDeath   EventKind = "death"
	EventLevelUp EventKind = "level_up"
	EventVictory EventKind = "victory"
	EventDefeat  EventKind = "defeat"
)

// Event is emitted by a game tick for sound cues and logging.
type Event struct {
	Kind  EventKind
	Value int // Score delta for pickups and deaths, level for level ups
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
