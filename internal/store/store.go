// Package store keeps a history of solve runs in sqlite. Problem instances
// themselves are never persisted, only the result of solving them.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("store: run not found")

// Run is one recorded solve: its dimensions, the rule used and the outcome.
type Run struct {
	RunID         string
	CreatedAt     time.Time
	NumJobs       int
	NumMachines   int
	NumOperations int
	Algorithm     string
	Rule          string
	Makespan      float64
	SolveMs       float64
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS solve_runs (
	run_id         TEXT PRIMARY KEY,
	created_at     TIMESTAMP NOT NULL,
	num_jobs       INTEGER NOT NULL,
	num_machines   INTEGER NOT NULL,
	num_operations INTEGER NOT NULL,
	algorithm      TEXT NOT NULL,
	rule           TEXT NOT NULL,
	makespan       REAL NOT NULL,
	solve_ms       REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_solve_runs_created_at ON solve_runs (created_at);
`

// Open connects to the sqlite database at dsn (":memory:" works for tests)
// and creates the schema if it is missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveRun(run *Run) error {
	query := `
		INSERT INTO solve_runs (run_id, created_at, num_jobs, num_machines, num_operations, algorithm, rule, makespan, solve_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		run.RunID,
		run.CreatedAt,
		run.NumJobs,
		run.NumMachines,
		run.NumOperations,
		run.Algorithm,
		run.Rule,
		run.Makespan,
		run.SolveMs,
	)
	return err
}

func (s *Store) GetRun(runID string) (*Run, error) {
	run := &Run{}
	query := `
		SELECT run_id, created_at, num_jobs, num_machines, num_operations, algorithm, rule, makespan, solve_ms
		FROM solve_runs
		WHERE run_id = ?
	`
	err := s.db.QueryRow(query, runID).Scan(
		&run.RunID,
		&run.CreatedAt,
		&run.NumJobs,
		&run.NumMachines,
		&run.NumOperations,
		&run.Algorithm,
		&run.Rule,
		&run.Makespan,
		&run.SolveMs,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, num_jobs, num_machines, num_operations, algorithm, rule, makespan, solve_ms
		FROM solve_runs
		ORDER BY created_at DESC, run_id
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.RunID,
			&run.CreatedAt,
			&run.NumJobs,
			&run.NumMachines,
			&run.NumOperations,
			&run.Algorithm,
			&run.Rule,
			&run.Makespan,
			&run.SolveMs,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
