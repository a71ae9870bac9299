// Package store provides schedule.Store implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/schedule-engine/schedule"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu    sync.RWMutex
	plans map[string]schedule.Plan
	runs  map[string][]schedule.Run
}

var _ schedule.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		plans: make(map[string]schedule.Plan),
		runs:  make(map[string][]schedule.Run),
	}
}

func (m *Memory) SavePlan(_ context.Context, p schedule.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[p.ID] = p
	return nil
}

func (m *Memory) GetPlan(_ context.Context, id string) (schedule.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plans[id]
	if !ok {
		return schedule.Plan{}, schedule.ErrPlanNotFound
	}
	return p, nil
}

func (m *Memory) ListPlans(_ context.Context) ([]schedule.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	plans := make([]schedule.Plan, 0, len(m.plans))
	for _, p := range m.plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].ID < plans[j].ID
		}
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})
	return plans, nil
}

func (m *Memory) DeletePlan(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.plans, id)
	delete(m.runs, id)
	return nil
}

func (m *Memory) SaveRun(_ context.Context, r schedule.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.PlanID] = append(m.runs[r.PlanID], r)
	return nil
}

func (m *Memory) ListRuns(_ context.Context, planID string) ([]schedule.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	runs := append([]schedule.Run(nil), m.runs[planID]...)
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].GeneratedAt.After(runs[j].GeneratedAt)
	})
	return runs, nil
}
