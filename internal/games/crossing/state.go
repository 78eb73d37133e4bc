package crossing

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gem-crossing/internal/config"
)

// Toast is a short message shown over the player's cell.
type Toast struct {
	Active  bool
	Message string
	Row     int
	Col     int
	Since   time.Time
}

// GameState is the per-session progress: level, score, lives and terrain.
type GameState struct {
	Board         Board
	Level         int
	Score         int // Goes negative after early deaths
	Lives         int
	GemsCollected int
	Loading       bool
	Toast         Toast

	startLives   int
	deathPenalty int
}

// NewGameState creates a state in its fully reset form.
func NewGameState(rules config.CrossingGameplay) GameState {
	st := GameState{
		startLives:   rules.Lives,
		deathPenalty: rules.DeathPenalty,
	}
	st.FullReset()
	return st
}

// InitializeLevel prepares the board for the current level: no gems
// collected, and exactly Level water cells.
func (st *GameState) InitializeLevel(rng *rand.Rand) {
	st.GemsCollected = 0
	st.Board.Reset()
	st.Board.PlaceWaterHazards(rng, st.Level)
	st.Loading = false
	st.Toast.Active = false
}

// OnPlayerDeath applies the death penalty. Moving the player is the
// caller's job.
func (st *GameState) OnPlayerDeath() {
	st.Lives--
	st.Score -= st.deathPenalty
}

// FullReset starts a new session at level 1.
func (st *GameState) FullReset() {
	st.Board.Reset()
	st.Level = 1
	st.Loading = true
	st.GemsCollected = 0
	st.Lives = st.startLives
	st.Score = 0
	st.Toast = Toast{}
}

// ActiveCollectible returns the kind the player is hunting: gems until
// Level of them are collected, then the key.
func (st *GameState) ActiveCollectible() Kind {
	if st.GemsCollected != st.Level {
		return KindGem
	}
	return KindKey
}

// GemsLeft is shown in the HUD.
func (st *GameState) GemsLeft() int {
	return st.Level - st.GemsCollected
}

// SetToast shows msg at (row, col) starting now.
func (st *GameState) SetToast(msg string, row, col int, now time.Time) {
	st.Toast = Toast{Active: true, Message: msg, Row: row, Col: col, Since: now}
}
