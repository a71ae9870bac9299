/*
Package factory provides JSON to Go plan conversion.

PURPOSE:

	Converts JSON plan definitions into schedule.Plan values. This enables
	rotation configuration without code changes - operations staff can define
	rotations in JSON, and the factory creates the proper Go structs.

JSON SCHEMA:

	{
	  "id": "rotation-4x4",
	  "name": "4 on / 4 off",
	  "description": "Four working days followed by four days off",
	  "cycle": {
	    "work_days": 4,
	    "off_days": 4
	  },
	  "minutes_per_day": 720
	}

KEY FEATURES:
  - Validates JSON structure and cycle ranges
  - Sets sensible defaults (minutes_per_day defaults to a standard day)
  - Mints an ID when none is given

USAGE:

	// From JSON string
	plan, err := factory.ParsePlan(jsonString)

	// From a preset (recommended)
	jsonStr := schedule.FiveTwoJSON("office-week", "Office Week")
	plan, err := factory.ParsePlan(jsonStr)

SEE ALSO:
  - schedule/plan.go: Plan type definition
  - schedule/factory.go: Preset JSON builders
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/warp/schedule-engine/schedule"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// PlanJSON is the JSON representation of a plan.
type PlanJSON struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Cycle         CycleJSON `json:"cycle"`
	MinutesPerDay int       `json:"minutes_per_day,omitempty"`
}

// CycleJSON represents the repeating work/off pattern.
type CycleJSON struct {
	WorkDays int `json:"work_days"`
	OffDays  int `json:"off_days"`
}

// =============================================================================
// PLAN FACTORY
// =============================================================================

// ParsePlan parses a JSON string into a validated schedule.Plan.
func ParsePlan(jsonStr string) (schedule.Plan, error) {
	var pj PlanJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return schedule.Plan{}, fmt.Errorf("failed to parse plan JSON: %w", err)
	}
	return FromJSON(pj)
}

// FromJSON converts PlanJSON to a schedule.Plan.
func FromJSON(pj PlanJSON) (schedule.Plan, error) {
	if pj.Name == "" {
		return schedule.Plan{}, fmt.Errorf("plan name is required")
	}

	cycle := schedule.Cycle{
		WorkDays: pj.Cycle.WorkDays,
		OffDays:  pj.Cycle.OffDays,
	}

	return schedule.NewPlan(pj.ID, pj.Name, pj.Description, cycle, pj.MinutesPerDay)
}

// ToJSON converts a plan back to its JSON representation.
func ToJSON(p schedule.Plan) PlanJSON {
	return PlanJSON{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Cycle: CycleJSON{
			WorkDays: p.Cycle.WorkDays,
			OffDays:  p.Cycle.OffDays,
		},
		MinutesPerDay: p.MinutesPerDay,
	}
}
