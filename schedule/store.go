/*
store.go - Persistence interfaces for plans and runs

PURPOSE:

	Defines the interface between the schedule domain and the database.
	Different implementations can use SQLite or in-memory storage.

KEY INTERFACES:

	PlanStore: Plan definitions (save, get, list, delete)
	RunStore:  Recorded generations, append-only per plan

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: Production SQLite
  - schedule/store/memory.go: In-memory for testing

SEE ALSO:
  - plan.go: Plan and Run types
*/
package schedule

import (
	"context"
	"errors"
)

// ErrPlanNotFound is returned when a referenced plan doesn't exist.
var ErrPlanNotFound = errors.New("plan not found")

// PlanStore handles persistence of plan definitions.
type PlanStore interface {
	// SavePlan persists a plan, replacing any plan with the same ID.
	SavePlan(ctx context.Context, p Plan) error

	// GetPlan returns the plan with the given ID, or ErrPlanNotFound.
	GetPlan(ctx context.Context, id string) (Plan, error)

	// ListPlans returns all plans ordered by creation time.
	ListPlans(ctx context.Context) ([]Plan, error)

	// DeletePlan removes a plan. Deleting a missing plan is not an error.
	DeletePlan(ctx context.Context, id string) error
}

// RunStore handles persistence of recorded generations.
type RunStore interface {
	// SaveRun appends a run. Runs are never updated.
	SaveRun(ctx context.Context, r Run) error

	// ListRuns returns all runs for a plan, most recent first.
	ListRuns(ctx context.Context, planID string) ([]Run, error)
}

// Store combines plan and run persistence.
type Store interface {
	PlanStore
	RunStore
}
