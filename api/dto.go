/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:

	Defines the JSON structures for API communication. These types decouple
	the internal domain model from the external API contract, allowing:
	- Field renaming without breaking clients
	- API-specific validation
	- Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:

	Request types carry go-playground/validator struct tags; handlers run
	them through the shared validator before touching domain logic. Domain
	invariants (cycle ranges, date validity) are still enforced by the
	domain itself.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/plan.go: PlanJSON type
*/
package api

// =============================================================================
// SCHEDULE GENERATION
// =============================================================================

// GenerateRequest asks for the working days of a cycle within a period.
// Dates are DD-MM-YYYY.
type GenerateRequest struct {
	Start         string `json:"start" validate:"required"`
	End           string `json:"end" validate:"required"`
	WorkDays      int    `json:"work_days"`
	OffDays       int    `json:"off_days"`
	MinutesPerDay int    `json:"minutes_per_day,omitempty" validate:"omitempty,min=1,max=1440"`
}

// ScheduleDTO is a generated schedule with its workload summary.
type ScheduleDTO struct {
	Start       string     `json:"start"`
	End         string     `json:"end"`
	WorkDays    int        `json:"work_days"`
	OffDays     int        `json:"off_days"`
	WorkingDays []string   `json:"working_days"`
	Summary     SummaryDTO `json:"summary"`
}

// SummaryDTO reports the workload of a schedule. TotalHours is a decimal
// string to keep exactness on the wire.
type SummaryDTO struct {
	WorkingDays   int    `json:"working_days"`
	MinutesPerDay int    `json:"minutes_per_day"`
	TotalMinutes  int    `json:"total_minutes"`
	TotalHours    string `json:"total_hours"`
}

// =============================================================================
// PLANS AND RUNS
// =============================================================================

// CreatePlanRequest is the request to create a plan.
type CreatePlanRequest struct {
	ID            string           `json:"id,omitempty"`
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description,omitempty"`
	Cycle         CycleRequestBody `json:"cycle" validate:"required"`
	MinutesPerDay int              `json:"minutes_per_day,omitempty" validate:"omitempty,min=1,max=1440"`
}

// CycleRequestBody is the work/off pattern of a plan request.
type CycleRequestBody struct {
	WorkDays int `json:"work_days" validate:"min=1"`
	OffDays  int `json:"off_days" validate:"min=0"`
}

// PlanDTO represents a plan in API responses.
type PlanDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	WorkDays      int    `json:"work_days"`
	OffDays       int    `json:"off_days"`
	MinutesPerDay int    `json:"minutes_per_day"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// GeneratePlanRequest runs a stored plan over a period.
type GeneratePlanRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// RunDTO is a recorded generation of a plan.
type RunDTO struct {
	ID          string     `json:"id"`
	PlanID      string     `json:"plan_id"`
	Start       string     `json:"start"`
	End         string     `json:"end"`
	Dates       []string   `json:"dates"`
	Summary     SummaryDTO `json:"summary"`
	GeneratedAt string     `json:"generated_at"`
}

// =============================================================================
// SCENARIOS
// =============================================================================

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id" validate:"required"`
}
