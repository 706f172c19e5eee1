// Package storage keeps the history of finished level runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// History feeds the scoreboard only; a new session always starts at level 0.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pacdfa/internal/config"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Outcome is how a run on a level ended.
type Outcome string

const (
	OutcomeCleared Outcome = "cleared"
	OutcomeCaught  Outcome = "caught"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one attempt at a level, from its initial state to a terminal state.
type Run struct {
	ID        int64
	Pack      string
	Level     int // 0-based index within the pack
	LevelName string
	Outcome   Outcome
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// LevelStats aggregates the runs of one level.
type LevelStats struct {
	Level     int
	LevelName string
	Clears    int
	Deaths    int
	BestMoves int // 0 when never cleared
}

// Open creates or opens a SQLite database at the given path.
// It expands "~", creates the parent directories and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != MemoryPath {
		expanded, err := config.ExpandPath(dbPath)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		dbPath = expanded

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions record concurrently; one connection serializes the writes.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			outcome TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pack_level ON runs(pack, level);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(pack, level, outcome, moves);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID.
func (s *Store) RecordRun(r Run) (int64, error) {
	if r.Outcome != OutcomeCleared && r.Outcome != OutcomeCaught {
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (pack, level, level_name, outcome, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Pack, r.Level, r.LevelName, string(r.Outcome), r.Moves, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestClears returns the cleared runs of a level, fewest moves first,
// then fastest, then oldest.
func (s *Store) BestClears(pack string, level, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack, level, level_name, outcome, moves, duration_ms, created_at
		 FROM runs
		 WHERE pack = ? AND level = ? AND outcome = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		pack, level, string(OutcomeCleared), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns returns the latest runs of a pack, newest first.
func (s *Store) RecentRuns(pack string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack, level, level_name, outcome, moves, duration_ms, created_at
		 FROM runs
		 WHERE pack = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// LevelStats returns per-level clear and death counts for a pack, by level index.
func (s *Store) LevelStats(pack string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level,
		        MAX(level_name),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN moves END), 0)
		 FROM runs
		 WHERE pack = ?
		 GROUP BY level
		 ORDER BY level`,
		string(OutcomeCleared), string(OutcomeCaught), string(OutcomeCleared), pack,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		if err := rows.Scan(&st.Level, &st.LevelName, &st.Clears, &st.Deaths, &st.BestMoves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Packs lists every pack that has recorded runs, alphabetically.
func (s *Store) Packs() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT pack FROM runs ORDER BY pack`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		packs = append(packs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return packs, nil
}

// Clear deletes all runs of a pack.
func (s *Store) Clear(pack string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE pack = ?", pack); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var (
			r          Run
			outcome    string
			durationMs int64
			createdAt  any
		)
		if err := rows.Scan(&r.ID, &r.Pack, &r.Level, &r.LevelName, &outcome, &r.Moves, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both driver-decoded times and raw SQLite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
