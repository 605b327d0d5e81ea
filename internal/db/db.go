// Package db provides PostgreSQL persistence for advice runs and their stage
// outputs. Persistence is optional: the CLI only connects when a database URL
// is configured, and hook failures degrade to warnings.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL for the two persistence tables. Applied idempotently by
// EnsureSchema.
const Schema = `
CREATE TABLE IF NOT EXISTS advice_runs (
	id           UUID PRIMARY KEY,
	role         TEXT NOT NULL,
	location     TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'running',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	completed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS stage_results (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	run_id      UUID NOT NULL REFERENCES advice_runs(id) ON DELETE CASCADE,
	stage       TEXT NOT NULL,
	agent_label TEXT NOT NULL,
	task_label  TEXT NOT NULL,
	output      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (run_id, stage)
);
`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Run represents one persisted advice run
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Role        string     `json:"role"`
	Location    string     `json:"location"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// StageRecord is one persisted stage output
type StageRecord struct {
	ID         uuid.UUID `json:"id"`
	RunID      uuid.UUID `json:"run_id"`
	Stage      string    `json:"stage"`
	AgentLabel string    `json:"agent_label"`
	TaskLabel  string    `json:"task_label"`
	Output     string    `json:"output"`
	CreatedAt  time.Time `json:"created_at"`
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema applies the persistence schema idempotently
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// CreateRun records a new advice run
func (db *DB) CreateRun(ctx context.Context, runID uuid.UUID, role, location string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO advice_runs (id, role, location, status)
		 VALUES ($1, $2, $3, 'running')`,
		runID, role, location,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// CompleteRun marks an advice run as finished
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE advice_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveStageResult upserts one stage output for a run
func (db *DB) SaveStageResult(ctx context.Context, runID uuid.UUID, stage, agentLabel, taskLabel, output string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO stage_results (run_id, stage, agent_label, task_label, output)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (run_id, stage) DO UPDATE SET agent_label = $3, task_label = $4, output = $5, created_at = NOW()`,
		runID, stage, agentLabel, taskLabel, output,
	)
	if err != nil {
		return fmt.Errorf("failed to save stage result %s: %w", stage, err)
	}
	return nil
}

// GetRun retrieves an advice run by ID
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, role, location, status, created_at, completed_at
		 FROM advice_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Role, &run.Location, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent advice runs
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, role, location, status, created_at, completed_at
		 FROM advice_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Role, &run.Location, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// GetStageResults retrieves a run's stage outputs in insertion order
func (db *DB) GetStageResults(ctx context.Context, runID uuid.UUID) ([]StageRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, stage, agent_label, task_label, output, created_at
		 FROM stage_results WHERE run_id = $1 ORDER BY created_at`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage results: %w", err)
	}
	defer rows.Close()

	var records []StageRecord
	for rows.Next() {
		var rec StageRecord
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Stage, &rec.AgentLabel, &rec.TaskLabel, &rec.Output, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stage result: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
