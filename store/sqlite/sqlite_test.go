package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/schedule-engine/calendar"
	"github.com/warp/schedule-engine/schedule"
	"github.com/warp/schedule-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testPlan(t *testing.T, id string) schedule.Plan {
	t.Helper()
	p, err := schedule.NewPlan(id, "Plan "+id, "test rotation", schedule.Cycle{WorkDays: 4, OffDays: 4}, 720)
	require.NoError(t, err)
	return p
}

// =============================================================================
// PLAN PERSISTENCE
// =============================================================================

func TestStore_SaveAndGetPlan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := testPlan(t, "rotation-1")
	require.NoError(t, store.SavePlan(ctx, p))

	got, err := store.GetPlan(ctx, "rotation-1")
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Cycle, got.Cycle)
	assert.Equal(t, p.MinutesPerDay, got.MinutesPerDay)
	assert.Equal(t, p.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestStore_SavePlan_ReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := testPlan(t, "rotation-1")
	require.NoError(t, store.SavePlan(ctx, p))

	p.Name = "Renamed"
	p.Cycle = schedule.Cycle{WorkDays: 5, OffDays: 2}
	require.NoError(t, store.SavePlan(ctx, p))

	got, err := store.GetPlan(ctx, "rotation-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, schedule.Cycle{WorkDays: 5, OffDays: 2}, got.Cycle)

	plans, err := store.ListPlans(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestStore_GetPlan_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetPlan(context.Background(), "missing")
	assert.ErrorIs(t, err, schedule.ErrPlanNotFound)
}

func TestStore_DeletePlan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePlan(ctx, testPlan(t, "rotation-1")))
	require.NoError(t, store.DeletePlan(ctx, "rotation-1"))

	_, err := store.GetPlan(ctx, "rotation-1")
	assert.ErrorIs(t, err, schedule.ErrPlanNotFound)

	// Deleting a missing plan is not an error.
	assert.NoError(t, store.DeletePlan(ctx, "missing"))
}

// =============================================================================
// RUN PERSISTENCE
// =============================================================================

func TestStore_SaveAndListRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	plan := testPlan(t, "rotation-1")
	require.NoError(t, store.SavePlan(ctx, plan))

	p, err := calendar.ParsePeriod("01-01-2024", "16-01-2024")
	require.NoError(t, err)

	run, err := plan.Generate(p)
	require.NoError(t, err)
	require.NoError(t, store.SaveRun(ctx, run))

	runs, err := store.ListRuns(ctx, "rotation-1")
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "01-01-2024", got.Period.Start.String())
	assert.Equal(t, "16-01-2024", got.Period.End.String())
	assert.Equal(t, run.Dates, got.Dates)
	assert.Equal(t, run.Summary.WorkingDays, got.Summary.WorkingDays)
	assert.Equal(t, run.Summary.TotalMinutes, got.Summary.TotalMinutes)
	assert.Equal(t, run.Summary.TotalHours.String(), got.Summary.TotalHours.String())
}

func TestStore_DeletePlan_CascadesRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	plan := testPlan(t, "rotation-1")
	require.NoError(t, store.SavePlan(ctx, plan))

	p, err := calendar.ParsePeriod("01-01-2024", "16-01-2024")
	require.NoError(t, err)
	run, err := plan.Generate(p)
	require.NoError(t, err)
	require.NoError(t, store.SaveRun(ctx, run))

	require.NoError(t, store.DeletePlan(ctx, "rotation-1"))

	runs, err := store.ListRuns(ctx, "rotation-1")
	require.NoError(t, err)
	assert.Empty(t, runs)
}
