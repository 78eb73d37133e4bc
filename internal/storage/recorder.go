package storage

import "github.com/vovakirdan/gem-crossing/internal/core"

// Recorder saves one result per finished run. Frontends feed it the game
// state after every tick.
type Recorder struct {
	store  *Store // May be nil: nothing is saved
	gameID string
	player string
	saved  bool
}

// NewRecorder creates a recorder for one player's runs of a game.
func NewRecorder(store *Store, gameID, player string) *Recorder {
	return &Recorder{store: store, gameID: gameID, player: player}
}

// Observe saves the run the first time state reports game over with a
// positive score, and re-arms once a restart clears game over. It returns
// the saved result, or nil when nothing was saved.
func (r *Recorder) Observe(state core.GameState, difficulty string) (*Result, error) {
	if !state.GameOver {
		r.saved = false
		return nil, nil
	}
	if r.saved {
		return nil, nil
	}
	r.saved = true

	if r.store == nil || state.Score <= 0 {
		return nil, nil
	}

	outcome := OutcomeDefeat
	if state.Won {
		outcome = OutcomeVictory
	}
	res, err := r.store.SaveResult(Result{
		GameID:     r.gameID,
		Player:     r.player,
		Score:      state.Score,
		Level:      state.Level,
		Outcome:    outcome,
		Difficulty: difficulty,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
