package storage

import (
	"testing"

	"github.com/vovakirdan/gem-crossing/internal/core"
)

func TestRecorderSavesOncePerRun(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "crossing", "ada")

	playing := core.GameState{Score: 40, Level: 2, Lives: 1}
	over := core.GameState{Score: 90, Level: 3, GameOver: true}

	if res, err := rec.Observe(playing, "normal"); res != nil || err != nil {
		t.Fatalf("nothing to save mid-run, got %v, %v", res, err)
	}

	res, err := rec.Observe(over, "normal")
	if err != nil || res == nil {
		t.Fatalf("Observe() at game over = %v, %v", res, err)
	}
	if res.Player != "ada" || res.Score != 90 || res.Level != 3 || res.Outcome != OutcomeDefeat {
		t.Errorf("unexpected result: %+v", res)
	}

	// Later ticks of the same game over are ignored
	for i := 0; i < 3; i++ {
		if res, _ := rec.Observe(over, "normal"); res != nil {
			t.Fatal("game over saved twice")
		}
	}

	// A restart re-arms the recorder
	rec.Observe(playing, "normal")
	res, _ = rec.Observe(core.GameState{Score: 300, Level: 10, GameOver: true, Won: true}, "hard")
	if res == nil || res.Outcome != OutcomeVictory || res.Difficulty != "hard" {
		t.Errorf("second run not saved correctly: %+v", res)
	}

	best, err := store.HighScore("crossing", "")
	if err != nil || best != 300 {
		t.Errorf("HighScore() = %d, %v; expected 300", best, err)
	}
}

func TestRecorderSkipsNonPositiveScores(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "crossing", "")

	if res, err := rec.Observe(core.GameState{Score: -60, GameOver: true}, "normal"); res != nil || err != nil {
		t.Errorf("negative score saved: %v, %v", res, err)
	}
	if res, _ := rec.Observe(core.GameState{Score: 0, GameOver: true}, "normal"); res != nil {
		t.Error("zero score saved")
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, "crossing", "ada")
	if res, err := rec.Observe(core.GameState{Score: 50, GameOver: true}, "normal"); res != nil || err != nil {
		t.Errorf("nil store should save nothing, got %v, %v", res, err)
	}
}
