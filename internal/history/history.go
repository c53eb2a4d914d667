// SPDX-License-Identifier: MIT

// Package history records solver runs in a SQLite database so that
// colorings, iteration counts and timings can be compared across runs.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/mcgs/solver"
)

// ErrNotFound indicates an unknown run ID.
var ErrNotFound = errors.New("history: run not found")

// Run is one recorded solve.
type Run struct {
	ID              uuid.UUID
	StartedAt       time.Time
	Source          string // matrix file or generator spec
	N               int
	NNZ             int
	Strategy        string
	Seed            int64
	Colors          int
	Relaxation      float64
	Tolerance       float64
	State           string
	Iterations      int
	Residual        float64
	InitialResidual float64
	ColoringTime    time.Duration
	SweepTime       time.Duration
	History         []float64
}

// NewRun captures a finished solve under a fresh random ID.
func NewRun(source string, n, nnz int, cfg solver.Config, rep *solver.Report, started time.Time) Run {
	return Run{
		ID:              uuid.New(),
		StartedAt:       started.UTC(),
		Source:          source,
		N:               n,
		NNZ:             nnz,
		Strategy:        rep.Strategy.String(),
		Seed:            cfg.Seed,
		Colors:          rep.Colors,
		Relaxation:      cfg.Relaxation,
		Tolerance:       cfg.Tolerance,
		State:           rep.State.String(),
		Iterations:      rep.Iterations,
		Residual:        rep.Residual,
		InitialResidual: rep.InitialResidual,
		ColoringTime:    rep.ColoringTime,
		SweepTime:       rep.SweepTime,
		History:         rep.History,
	}
}

// Store is a SQLite-backed run log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. ":memory:" gives a
// private in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		source TEXT NOT NULL,
		n INTEGER NOT NULL,
		nnz INTEGER NOT NULL,
		strategy TEXT NOT NULL,
		seed INTEGER NOT NULL,
		colors INTEGER NOT NULL,
		relaxation REAL NOT NULL,
		tolerance REAL NOT NULL,
		state TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		residual REAL NOT NULL,
		initial_residual REAL NOT NULL,
		coloring_ns INTEGER NOT NULL,
		sweep_ns INTEGER NOT NULL,
		history JSON NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts run.
func (s *Store) Record(ctx context.Context, run Run) error {
	hist, err := json.Marshal(run.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, source, n, nnz, strategy, seed, colors,
			relaxation, tolerance, state, iterations, residual, initial_residual,
			coloring_ns, sweep_ns, history)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.StartedAt.Format(time.RFC3339Nano), run.Source, run.N, run.NNZ,
		run.Strategy, run.Seed, run.Colors, run.Relaxation, run.Tolerance, run.State,
		run.Iterations, run.Residual, run.InitialResidual,
		int64(run.ColoringTime), int64(run.SweepTime), string(hist))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

const selectRun = `
	SELECT id, started_at, source, n, nnz, strategy, seed, colors, relaxation,
		tolerance, state, iterations, residual, initial_residual, coloring_ns,
		sweep_ns, history
	FROM runs`

// Get returns the run with the given ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Run, error) {
	row := s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id.String())
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// List returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := selectRun + ` ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		run                 Run
		id, started, hist   string
		coloringNS, sweepNS int64
	)
	err := sc.Scan(&id, &started, &run.Source, &run.N, &run.NNZ, &run.Strategy, &run.Seed,
		&run.Colors, &run.Relaxation, &run.Tolerance, &run.State, &run.Iterations,
		&run.Residual, &run.InitialResidual, &coloringNS, &sweepNS, &hist)
	if err != nil {
		return nil, err
	}
	if run.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse id: %w", err)
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}
	if err := json.Unmarshal([]byte(hist), &run.History); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	run.ColoringTime = time.Duration(coloringNS)
	run.SweepTime = time.Duration(sweepNS)
	return &run, nil
}
