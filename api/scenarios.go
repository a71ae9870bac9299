/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the store with realistic
	rotations for testing and demos. Each scenario wipes the store and
	seeds a set of plans.

AVAILABLE SCENARIOS:

	office-week:     Standard five-on-two-off office rotation
	shift-rotation:  Classic 4 on / 4 off twelve-hour shift pattern
	duty-roster:     One 24-hour duty day followed by three days off

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "shift-rotation"}

NOTE:

	Scenarios reset the store. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: Shared helpers
  - schedule/factory.go: Preset plan JSON
*/
package api

import (
	"context"
	"net/http"

	"github.com/warp/schedule-engine/factory"
	"github.com/warp/schedule-engine/schedule"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "office-week",
		Name:        "Office Week",
		Description: "Five working days followed by a two-day weekend",
	},
	{
		ID:          "shift-rotation",
		Name:        "Shift Rotation",
		Description: "Four twelve-hour shifts followed by four days off",
	},
	{
		ID:          "duty-roster",
		Name:        "Duty Roster",
		Description: "One 24-hour duty day followed by three days off",
	},
}

// scenarioPlans returns the preset JSON definitions seeded by a scenario.
func scenarioPlans(scenarioID string) []string {
	switch scenarioID {
	case "office-week":
		return []string{schedule.FiveTwoJSON("office-week", "Office Week")}
	case "shift-rotation":
		return []string{
			schedule.FourOnFourOffJSON("shift-day", "Day Shift 4x4"),
			schedule.FourOnFourOffJSON("shift-night", "Night Shift 4x4"),
		}
	case "duty-roster":
		return []string{schedule.OneOnThreeOffJSON("duty-roster", "Duty Roster")}
	default:
		return nil
	}
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetCurrentScenario returns the most recently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"scenario_id": h.currentScenario})
}

// LoadScenario wipes the store and seeds the selected scenario's plans.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if !h.decode(w, r, &req) {
		return
	}

	presets := scenarioPlans(req.ScenarioID)
	if presets == nil {
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	if err := h.resetStore(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset store", err)
		return
	}

	for _, jsonStr := range presets {
		plan, err := factory.ParsePlan(jsonStr)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Invalid preset plan", err)
			return
		}
		if err := h.Store.SavePlan(r.Context(), plan); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed plan", err)
			return
		}
	}

	h.currentScenario = req.ScenarioID
	h.Logger.Info("scenario loaded", "scenario_id", req.ScenarioID, "plans", len(presets))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenario_id": req.ScenarioID,
		"plans":       len(presets),
	})
}

// ResetStore removes all plans and runs.
func (h *Handler) ResetStore(w http.ResponseWriter, r *http.Request) {
	if err := h.resetStore(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset store", err)
		return
	}
	h.currentScenario = ""
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *Handler) resetStore(ctx context.Context) error {
	plans, err := h.Store.ListPlans(ctx)
	if err != nil {
		return err
	}
	for _, p := range plans {
		if err := h.Store.DeletePlan(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}
