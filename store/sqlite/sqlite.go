/*
Package sqlite provides a SQLite-backed implementation of the storage interfaces.

PURPOSE:

	Implements schedule.PlanStore and schedule.RunStore using SQLite. In
	production, the same patterns apply to PostgreSQL - only minor SQL
	dialect differences.

KEY TABLES:

	plans: Rotation definitions (cycle lengths, workload)
	runs:  Recorded generations (append-only; a run is never updated)

CONCURRENCY:

	Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
	database-level concurrency control handles this instead.

WAL MODE:

	SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
	- Multiple readers don't block
	- Single writer at a time
	- Better crash recovery

USAGE:

	store, err := sqlite.New("./data/schedules.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

MIGRATION:

	Schema is auto-migrated on New(). For production, use a proper
	migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - schedule/store.go: Interface definitions
  - schedule/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/schedule-engine/calendar"
	"github.com/warp/schedule-engine/schedule"
)

// Store implements schedule.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ schedule.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Rotation definitions
	CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		work_days INTEGER NOT NULL,
		off_days INTEGER NOT NULL,
		minutes_per_day INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Recorded generations (append-only)
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		plan_id TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		period_start TEXT NOT NULL,
		period_end TEXT NOT NULL,
		dates_json TEXT NOT NULL,
		working_days INTEGER NOT NULL,
		minutes_per_day INTEGER NOT NULL,
		total_minutes INTEGER NOT NULL,
		generated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_plan_generated ON runs(plan_id, generated_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PLANS
// =============================================================================

func (s *Store) SavePlan(ctx context.Context, p schedule.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plans (id, name, description, work_days, off_days, minutes_per_day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			work_days = excluded.work_days,
			off_days = excluded.off_days,
			minutes_per_day = excluded.minutes_per_day`,
		p.ID, p.Name, p.Description, p.Cycle.WorkDays, p.Cycle.OffDays,
		p.MinutesPerDay, p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (s *Store) GetPlan(ctx context.Context, id string) (schedule.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, work_days, off_days, minutes_per_day, created_at
		FROM plans WHERE id = ?`, id)

	p, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return schedule.Plan{}, schedule.ErrPlanNotFound
	}
	if err != nil {
		return schedule.Plan{}, fmt.Errorf("failed to get plan: %w", err)
	}
	return p, nil
}

func (s *Store) ListPlans(ctx context.Context) ([]schedule.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, work_days, off_days, minutes_per_day, created_at
		FROM plans ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []schedule.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *Store) DeletePlan(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

// scannable covers both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...interface{}) error
}

func scanPlan(row scannable) (schedule.Plan, error) {
	var p schedule.Plan
	var description sql.NullString
	var createdAt string

	err := row.Scan(&p.ID, &p.Name, &description, &p.Cycle.WorkDays,
		&p.Cycle.OffDays, &p.MinutesPerDay, &createdAt)
	if err != nil {
		return schedule.Plan{}, err
	}

	p.Description = description.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	return p, nil
}

// =============================================================================
// RUNS
// =============================================================================

func (s *Store) SaveRun(ctx context.Context, r schedule.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	datesJSON, err := json.Marshal(r.Dates)
	if err != nil {
		return fmt.Errorf("failed to encode run dates: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, plan_id, period_start, period_end, dates_json,
			working_days, minutes_per_day, total_minutes, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.PlanID, r.Period.Start.String(), r.Period.End.String(), string(datesJSON),
		r.Summary.WorkingDays, r.Summary.MinutesPerDay, r.Summary.TotalMinutes,
		r.GeneratedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

func (s *Store) ListRuns(ctx context.Context, planID string) ([]schedule.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, plan_id, period_start, period_end, dates_json,
			working_days, minutes_per_day, total_minutes, generated_at
		FROM runs WHERE plan_id = ? ORDER BY generated_at DESC, id`, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []schedule.Run
	for rows.Next() {
		var r schedule.Run
		var periodStart, periodEnd, datesJSON, generatedAt string

		err := rows.Scan(&r.ID, &r.PlanID, &periodStart, &periodEnd, &datesJSON,
			&r.Summary.WorkingDays, &r.Summary.MinutesPerDay, &r.Summary.TotalMinutes,
			&generatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		if r.Period, err = calendar.ParsePeriod(periodStart, periodEnd); err != nil {
			return nil, fmt.Errorf("corrupt run period: %w", err)
		}
		if err := json.Unmarshal([]byte(datesJSON), &r.Dates); err != nil {
			return nil, fmt.Errorf("corrupt run dates: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, generatedAt); err == nil {
			r.GeneratedAt = t
		}
		r.Summary = schedule.NewSummary(r.Summary.WorkingDays, r.Summary.MinutesPerDay)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
