package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/warp/schedule-engine/calendar"
)

// =============================================================================
// PLAN - A named, persisted rotation
// =============================================================================

// Plan is a reusable rotation definition: a cycle plus the workload of each
// working day. Plans are stored once and generated against many periods.
type Plan struct {
	ID            string
	Name          string
	Description   string
	Cycle         Cycle
	MinutesPerDay int
	CreatedAt     time.Time
}

// NewPlan builds a validated plan, minting an ID when none is given.
func NewPlan(id, name, description string, cycle Cycle, minutesPerDay int) (Plan, error) {
	if err := cycle.Validate(); err != nil {
		return Plan{}, err
	}
	if minutesPerDay == 0 {
		minutesPerDay = DefaultMinutesPerDay
	}
	if err := (Workload{MinutesPerDay: minutesPerDay}).Validate(); err != nil {
		return Plan{}, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	return Plan{
		ID:            id,
		Name:          name,
		Description:   description,
		Cycle:         cycle,
		MinutesPerDay: minutesPerDay,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Generate runs the plan's cycle over a period and records the outcome as a
// Run, including the workload summary.
func (p Plan) Generate(period calendar.Period) (Run, error) {
	dates, err := Generate(period, p.Cycle)
	if err != nil {
		return Run{}, err
	}
	return Run{
		ID:          uuid.NewString(),
		PlanID:      p.ID,
		Period:      period,
		Dates:       FormatAll(dates),
		Summary:     Summarize(dates, Workload{MinutesPerDay: p.MinutesPerDay}),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Run is one recorded generation of a plan over a period.
type Run struct {
	ID          string
	PlanID      string
	Period      calendar.Period
	Dates       []string
	Summary     Summary
	GeneratedAt time.Time
}
