// Package history persists regression battery runs in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cpkit/internal/logging"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one battery execution.
type Run struct {
	ID         string
	Battery    string
	StartedAt  time.Time
	DurationMs int64
	Passed     int
	Failed     int
	Cases      []CaseResult
}

// CaseResult is the stored outcome of a single case.
type CaseResult struct {
	CaseID     string
	Problem    string
	Success    bool
	DurationMs int64
	Error      string
}

// Store is a SQLite-backed run history.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open initializes the SQLite database at the given path.
func Open(path string) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logging.Get(logging.CategoryHistory).Debug("opened history at %s", path)
	return s, nil
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	runsTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		battery TEXT NOT NULL,
		started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	casesTable := `
	CREATE TABLE IF NOT EXISTS case_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		case_id TEXT NOT NULL,
		problem TEXT NOT NULL,
		success INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		error TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_case_results_run ON case_results(run_id);
	`

	for _, table := range []string{runsTable, casesTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores run and its cases in one transaction and returns the new run id.
func (s *Store) Record(ctx context.Context, run Run) (string, error) {
	id := uuid.NewString()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, battery, started_at, duration_ms, passed, failed) VALUES (?, ?, ?, ?, ?, ?)`,
		id, run.Battery, run.StartedAt.UnixMilli(), run.DurationMs, run.Passed, run.Failed,
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO case_results (run_id, case_id, problem, success, duration_ms, error) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare case insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range run.Cases {
		if _, err := stmt.ExecContext(ctx, id, c.CaseID, c.Problem, c.Success, c.DurationMs, c.Error); err != nil {
			return "", fmt.Errorf("failed to insert case %s: %w", c.CaseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	logging.Get(logging.CategoryHistory).Info("recorded run %s (%d passed, %d failed)", id, run.Passed, run.Failed)
	return id, nil
}

// Recent returns up to limit runs, newest first. Cases are not loaded.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, battery, started_at, duration_ms, passed, failed
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedMs int64
		if err := rows.Scan(&r.ID, &r.Battery, &startedMs, &r.DurationMs, &r.Passed, &r.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.UnixMilli(startedMs)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Cases returns the case results of a run in insertion order.
func (s *Store) Cases(ctx context.Context, runID string) ([]CaseResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT case_id, problem, success, duration_ms, COALESCE(error, '')
		 FROM case_results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	var cases []CaseResult
	for rows.Next() {
		var c CaseResult
		if err := rows.Scan(&c.CaseID, &c.Problem, &c.Success, &c.DurationMs, &c.Error); err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

// Prune deletes all but the newest keep runs and returns how many were removed.
// keep <= 0 is a no-op.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stale := `SELECT id FROM runs ORDER BY started_at DESC, rowid DESC LIMIT -1 OFFSET ?`
	if _, err := tx.ExecContext(ctx, `DELETE FROM case_results WHERE run_id IN (`+stale+`)`, keep); err != nil {
		return 0, fmt.Errorf("failed to prune cases: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id IN (`+stale+`)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	n, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit prune: %w", err)
	}
	if n > 0 {
		logging.Get(logging.CategoryHistory).Debug("pruned %d runs", n)
	}
	return n, nil
}
