// Package storage persists finished runs and serves high scores.
// SQLite (pure-Go modernc.org/sqlite) is the default; a postgres:// DSN
// switches to PostgreSQL through lib/pq for shared servers.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"   // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcomes recorded with a result.
const (
	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"
)

// Store manages the database connection for score persistence.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Result is one finished run.
type Result struct {
	ID         int64
	RunID      string // UUID assigned on save
	GameID     string
	Player     string
	Score      int
	Level      int // Level reached
	Outcome    string
	Difficulty string
	CreatedAt  time.Time
}

// Open connects to the score database. dsn is either a SQLite file path
// (~ is expanded, parent directories are created) or a postgres:// URL.
func Open(dsn string) (*Store, error) {
	d := dialectFor(dsn)

	if d.name == "sqlite" {
		path, err := prepareSQLitePath(dsn)
		if err != nil {
			return nil, err
		}
		dsn = path
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, dialect: d}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func prepareSQLitePath(dbPath string) (string, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return dbPath, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(s.dialect.schema)
	return err
}

// Dialect returns "sqlite" or "postgres".
func (s *Store) Dialect() string {
	return s.dialect.name
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished run. A missing run ID or timestamp is
// filled in; the stored result is returned.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	err := s.db.QueryRow(
		s.dialect.rebind(`INSERT INTO results
		 (run_id, game_id, player, score, level, outcome, difficulty, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`),
		r.RunID, r.GameID, r.Player, r.Score, r.Level, r.Outcome, r.Difficulty, r.CreatedAt,
	).Scan(&r.ID)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r, nil
}

// TopScores retrieves the best results for a game, highest score first.
// An empty difficulty matches every preset.
func (s *Store) TopScores(gameID, difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		s.dialect.rebind(`SELECT id, run_id, game_id, player, score, level, outcome, difficulty, created_at
		 FROM results
		 WHERE game_id = ? AND (CAST(? AS TEXT) = '' OR difficulty = ?)
		 ORDER BY score DESC, id ASC
		 LIMIT ?`),
		gameID, difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Player, &r.Score, &r.Level,
			&r.Outcome, &r.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// ResultByRunID looks up one run. Returns nil when it does not exist.
func (s *Store) ResultByRunID(runID string) (*Result, error) {
	var r Result
	var createdAt any
	err := s.db.QueryRow(
		s.dialect.rebind(`SELECT id, run_id, game_id, player, score, level, outcome, difficulty, created_at
		 FROM results WHERE run_id = ?`),
		runID,
	).Scan(&r.ID, &r.RunID, &r.GameID, &r.Player, &r.Score, &r.Level, &r.Outcome, &r.Difficulty, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// HighScore returns the highest score for a game and difficulty.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID, difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		s.dialect.rebind("SELECT MAX(score) FROM results WHERE game_id = ? AND (CAST(? AS TEXT) = '' OR difficulty = ?)"),
		gameID, difficulty, difficulty,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all results for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec(s.dialect.rebind("DELETE FROM results WHERE game_id = ?"), gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated results for one difficulty.
type Stats struct {
	Difficulty string
	Runs       int
	Victories  int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// StatsByDifficulty aggregates a game's results per difficulty preset.
func (s *Store) StatsByDifficulty(gameID string) (map[string]*Stats, error) {
	rows, err := s.db.Query(
		s.dialect.rebind(`SELECT difficulty, COUNT(*),
		        SUM(CASE WHEN outcome = 'victory' THEN 1 ELSE 0 END),
		        MAX(score), AVG(score), MAX(level), MAX(created_at)
		 FROM results
		 WHERE game_id = ?
		 GROUP BY difficulty`),
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Runs, &st.Victories, &st.HighScore,
			&st.AvgScore, &st.BestLevel, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// parseTime handles drivers that return timestamps as time.Time or text.
func parseTime(v any) time.Time {
	var text string
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	return time.Time{}
}
