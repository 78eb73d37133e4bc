package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, r Result) Result {
	t.Helper()
	if r.GameID == "" {
		r.GameID = "crossing"
	}
	if r.Difficulty == "" {
		r.Difficulty = "normal"
	}
	if r.Outcome == "" {
		r.Outcome = OutcomeDefeat
	}
	saved, err := s.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	return saved
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Dialect() != "sqlite" {
		t.Errorf("Dialect() = %q, expected sqlite", store.Dialect())
	}
}

func TestSaveResultAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	a := save(t, store, Result{Player: "ana", Score: 120, Level: 3})
	b := save(t, store, Result{Player: "ana", Score: 80, Level: 2})

	if a.RunID == "" || b.RunID == "" || a.RunID == b.RunID {
		t.Errorf("expected distinct run IDs, got %q and %q", a.RunID, b.RunID)
	}
	if a.ID == 0 || b.ID <= a.ID {
		t.Errorf("unexpected row IDs %d, %d", a.ID, b.ID)
	}

	got, err := store.ResultByRunID(a.RunID)
	if err != nil {
		t.Fatalf("ResultByRunID() failed: %v", err)
	}
	if got == nil || got.Player != "ana" || got.Score != 120 || got.Level != 3 || got.Outcome != OutcomeDefeat {
		t.Errorf("round trip mismatch: %+v", got)
	}

	missing, err := store.ResultByRunID("no-such-run")
	if err != nil || missing != nil {
		t.Errorf("missing run: %+v, %v", missing, err)
	}
}

func TestSaveResultKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)
	r := save(t, store, Result{RunID: "fixed-id", Score: 10})
	if r.RunID != "fixed-id" {
		t.Errorf("RunID = %q", r.RunID)
	}
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		save(t, store, Result{Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("crossing", "", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestTopScoresByDifficulty(t *testing.T) {
	store := openTestStore(t)
	save(t, store, Result{Score: 100, Difficulty: "easy"})
	save(t, store, Result{Score: 300, Difficulty: "hard"})
	save(t, store, Result{Score: 200, Difficulty: "hard"})
	save(t, store, Result{Score: 999, GameID: "other", Difficulty: "hard"})

	hard, err := store.TopScores("crossing", "hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 2 || hard[0].Score != 300 || hard[1].Score != 200 {
		t.Errorf("hard scores = %v", hard)
	}

	all, _ := store.TopScores("crossing", "", 10)
	if len(all) != 3 {
		t.Errorf("Expected 3 scores across difficulties, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("crossing", "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, Result{Score: 100})
	save(t, store, Result{Score: 300, Difficulty: "hard"})
	save(t, store, Result{Score: 200})

	if high, _ = store.HighScore("crossing", ""); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if high, _ = store.HighScore("crossing", "normal"); high != 200 {
		t.Errorf("Expected normal high score of 200, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, Result{Score: 100})
	save(t, store, Result{Score: 300, GameID: "other"})

	if err := store.ClearScores("crossing"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("crossing", "", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", "", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStatsByDifficulty(t *testing.T) {
	store := openTestStore(t)
	save(t, store, Result{Score: 100, Level: 4})
	save(t, store, Result{Score: 400, Level: 10, Outcome: OutcomeVictory})
	save(t, store, Result{Score: 50, Level: 2, Difficulty: "easy"})

	stats, err := store.StatsByDifficulty("crossing")
	if err != nil {
		t.Fatalf("StatsByDifficulty() failed: %v", err)
	}

	normal := stats["normal"]
	if normal == nil {
		t.Fatal("missing normal stats")
	}
	if normal.Runs != 2 || normal.Victories != 1 || normal.HighScore != 400 || normal.BestLevel != 10 {
		t.Errorf("normal stats = %+v", normal)
	}
	if normal.AvgScore != 250 {
		t.Errorf("AvgScore = %v, expected 250", normal.AvgScore)
	}
	if stats["easy"] == nil || stats["easy"].Runs != 1 {
		t.Errorf("easy stats = %+v", stats["easy"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.crossing/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".crossing", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"~/.crossing/scores.db", "sqlite"},
		{"/tmp/x.db", "sqlite"},
		{"postgres://user:pw@localhost/crossing?sslmode=disable", "postgres"},
		{"postgresql://localhost/crossing", "postgres"},
	}
	for _, tc := range tests {
		if got := dialectFor(tc.dsn).name; got != tc.want {
			t.Errorf("dialectFor(%q) = %q, expected %q", tc.dsn, got, tc.want)
		}
	}
}

func TestRebind(t *testing.T) {
	q := "SELECT * FROM results WHERE game_id = ? AND score > ? LIMIT ?"

	if got := sqliteDialect.rebind(q); got != q {
		t.Errorf("sqlite rebind changed query: %q", got)
	}

	want := "SELECT * FROM results WHERE game_id = $1 AND score > $2 LIMIT $3"
	if got := postgresDialect.rebind(q); got != want {
		t.Errorf("postgres rebind = %q, expected %q", got, want)
	}
}
