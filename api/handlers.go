/*
handlers.go - HTTP API handlers for the schedule engine

PURPOSE:

	Exposes the calendar toolkit and schedule generator via REST API.
	Handles HTTP request/response, JSON serialization, and delegates to
	domain logic.

ENDPOINTS:

	Schedules:
	  POST   /api/schedules/generate     Generate working days for a cycle

	Plans:
	  GET    /api/plans                  List all plans
	  POST   /api/plans                  Create plan
	  GET    /api/plans/{id}             Get plan details
	  DELETE /api/plans/{id}             Delete plan
	  POST   /api/plans/{id}/generate    Run plan over a period (records a run)
	  GET    /api/plans/{id}/runs        Generation history

	Calendar queries:
	  GET    /api/calendar/...           One-shot lookups (weekday, quarter...)

	Scenarios:
	  GET    /api/scenarios              List demo scenarios
	  POST   /api/scenarios/load         Load a demo scenario

REQUEST FLOW:
 1. Parse HTTP request
 2. Validate input (validator struct tags, then domain rules)
 3. Call domain logic (calendar, schedule, factory)
 4. Serialize response
 5. Handle errors

ERROR HANDLING:

	Errors are returned as JSON with appropriate HTTP status:
	- 400: Validation errors, invalid input
	- 404: Plan not found
	- 501: Intentionally unfinished capability
	- 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warp/schedule-engine/calendar"
	"github.com/warp/schedule-engine/factory"
	"github.com/warp/schedule-engine/schedule"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  schedule.Store
	Logger *slog.Logger

	validate *validator.Validate

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store schedule.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Store:    store,
		Logger:   logger,
		validate: validator.New(),
	}
}

// =============================================================================
// SCHEDULE HANDLERS
// =============================================================================

// GenerateSchedule produces the working days of an ad-hoc cycle.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !h.decode(w, r, &req) {
		return
	}

	period, err := calendar.ParsePeriod(req.Start, req.End)
	if err != nil {
		writeDomainError(w, "Invalid period", err)
		return
	}

	cycle := schedule.Cycle{WorkDays: req.WorkDays, OffDays: req.OffDays}
	dates, err := schedule.Generate(period, cycle)
	if err != nil {
		writeDomainError(w, "Invalid cycle", err)
		return
	}

	summary := schedule.Summarize(dates, schedule.Workload{MinutesPerDay: req.MinutesPerDay})
	writeJSON(w, http.StatusOK, ScheduleDTO{
		Start:       period.Start.String(),
		End:         period.End.String(),
		WorkDays:    cycle.WorkDays,
		OffDays:     cycle.OffDays,
		WorkingDays: schedule.FormatAll(dates),
		Summary:     toSummaryDTO(summary),
	})
}

// =============================================================================
// PLAN HANDLERS
// =============================================================================

// ListPlans returns all plans.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Store.ListPlans(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list plans", err)
		return
	}

	dtos := make([]PlanDTO, len(plans))
	for i, p := range plans {
		dtos[i] = toPlanDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePlan creates a plan from a JSON definition.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := factory.FromJSON(factory.PlanJSON{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Cycle:         factory.CycleJSON{WorkDays: req.Cycle.WorkDays, OffDays: req.Cycle.OffDays},
		MinutesPerDay: req.MinutesPerDay,
	})
	if err != nil {
		writeDomainError(w, "Invalid plan", err)
		return
	}

	if err := h.Store.SavePlan(r.Context(), plan); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save plan", err)
		return
	}

	h.Logger.Info("plan created", "plan_id", plan.ID, "cycle", plan.Cycle.String())
	writeJSON(w, http.StatusCreated, toPlanDTO(plan))
}

// GetPlan returns a single plan.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Store.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to get plan", err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanDTO(plan))
}

// DeletePlan removes a plan and its runs.
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeletePlan(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete plan", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GeneratePlan runs a stored plan over a period and records the run.
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := h.Store.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "Failed to get plan", err)
		return
	}

	period, err := calendar.ParsePeriod(req.Start, req.End)
	if err != nil {
		writeDomainError(w, "Invalid period", err)
		return
	}

	run, err := plan.Generate(period)
	if err != nil {
		writeDomainError(w, "Generation failed", err)
		return
	}

	if err := h.Store.SaveRun(r.Context(), run); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save run", err)
		return
	}

	h.Logger.Info("plan generated", "plan_id", plan.ID, "period", period.String(),
		"working_days", run.Summary.WorkingDays)
	writeJSON(w, http.StatusOK, toRunDTO(run))
}

// ListRuns returns the generation history of a plan.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if _, err := h.Store.GetPlan(r.Context(), planID); err != nil {
		writeDomainError(w, "Failed to get plan", err)
		return
	}

	runs, err := h.Store.ListRuns(r.Context(), planID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list runs", err)
		return
	}

	dtos := make([]RunDTO, len(runs))
	for i, run := range runs {
		dtos[i] = toRunDTO(run)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// CALENDAR QUERY HANDLERS
// =============================================================================

// GetWeekday returns the weekday index and name of a DD-MM-YYYY date.
func (h *Handler) GetWeekday(w http.ResponseWriter, r *http.Request) {
	d, ok := dateParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":          d.String(),
		"weekday_index": int(d.Weekday()),
		"weekday":       calendar.WeekdayName(d),
	})
}

// GetWeekNumber returns the week of the year a date falls into.
func (h *Handler) GetWeekNumber(w http.ResponseWriter, r *http.Request) {
	d, ok := dateParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date": d.String(),
		"week": calendar.WeekNumber(d),
	})
}

// GetQuarter returns the calendar quarter of a month.
func (h *Handler) GetQuarter(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"month":   int(month),
		"quarter": calendar.Quarter(month),
	})
}

// GetLeapYear reports whether a year is a leap year.
func (h *Handler) GetLeapYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year": year,
		"leap": calendar.IsLeapYear(year),
	})
}

// GetDaysInMonth returns the number of days in a month of a year.
func (h *Handler) GetDaysInMonth(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"month": int(month),
		"year":  year,
		"days":  calendar.DaysInMonth(month, year),
	})
}

// GetWeekendDays counts Saturdays and Sundays in a month.
func (h *Handler) GetWeekendDays(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"month":        int(month),
		"year":         year,
		"weekend_days": calendar.WeekendDays(month, year),
	})
}

// GetNextFriday returns the first Friday after a date.
func (h *Handler) GetNextFriday(w http.ResponseWriter, r *http.Request) {
	d, ok := dateParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":        d.String(),
		"next_friday": calendar.NextFriday(d).String(),
	})
}

// GetNextFridayThe13th returns the first Friday the 13th after a date.
func (h *Handler) GetNextFridayThe13th(w http.ResponseWriter, r *http.Request) {
	d, ok := dateParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":                 d.String(),
		"next_friday_the_13th": calendar.NextFridayThe13th(d).String(),
	})
}

// GetEpochMillis converts date text to milliseconds since epoch, UTC.
func (h *Handler) GetEpochMillis(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	millis, err := calendar.EpochMillis(text)
	if err != nil {
		writeDomainError(w, "Invalid date text", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"text":   text,
		"millis": millis,
	})
}

// GetClockTime renders the time-of-day of an instant as HH:MM:SS.
func (h *Handler) GetClockTime(w http.ResponseWriter, r *http.Request) {
	millis, ok := millisParam(w, r, "millis")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"millis": millis,
		"clock":  calendar.ClockTime(millis),
	})
}

// FormatInstant renders an instant in a locale. Only en-US is provided.
func (h *Handler) FormatInstant(w http.ResponseWriter, r *http.Request) {
	millis, ok := millisParam(w, r, "millis")
	if !ok {
		return
	}
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = "en-US"
	}

	formatted, err := calendar.FormatLocalized(millis, locale)
	if err != nil {
		writeDomainError(w, "Formatting failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"millis":    millis,
		"locale":    locale,
		"formatted": formatted,
	})
}

// GetDaysBetween returns the inclusive day count between two instants,
// given as date text.
func (h *Handler) GetDaysBetween(w http.ResponseWriter, r *http.Request) {
	from, err := calendar.EpochMillis(r.URL.Query().Get("from"))
	if err != nil {
		writeDomainError(w, "Invalid 'from' date", err)
		return
	}
	to, err := calendar.EpochMillis(r.URL.Query().Get("to"))
	if err != nil {
		writeDomainError(w, "Invalid 'to' date", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"from": from,
		"to":   to,
		"days": calendar.DaysBetween(from, to),
	})
}

// =============================================================================
// PARAMETER HELPERS
// =============================================================================

func dateParam(w http.ResponseWriter, r *http.Request) (calendar.Date, bool) {
	d, err := calendar.ParseDDMMYYYY(r.URL.Query().Get("date"))
	if err != nil {
		writeDomainError(w, "Invalid date", err)
		return calendar.Date{}, false
	}
	return d, true
}

func monthParam(w http.ResponseWriter, r *http.Request) (time.Month, bool) {
	n, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || n < 1 || n > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month", calendar.ErrInvalidArgument)
		return 0, false
	}
	return time.Month(n), true
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", calendar.ErrInvalidArgument)
		return 0, false
	}
	return n, true
}

func millisParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	n, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name, calendar.ErrInvalidArgument)
		return 0, false
	}
	return n, true
}

// decode parses and validates a JSON request body. On failure it writes the
// error response and returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return false
	}
	return true
}

// =============================================================================
// DTO CONVERSION
// =============================================================================

func toPlanDTO(p schedule.Plan) PlanDTO {
	return PlanDTO{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		WorkDays:      p.Cycle.WorkDays,
		OffDays:       p.Cycle.OffDays,
		MinutesPerDay: p.MinutesPerDay,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func toRunDTO(r schedule.Run) RunDTO {
	return RunDTO{
		ID:          r.ID,
		PlanID:      r.PlanID,
		Start:       r.Period.Start.String(),
		End:         r.Period.End.String(),
		Dates:       r.Dates,
		Summary:     toSummaryDTO(r.Summary),
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
}

func toSummaryDTO(s schedule.Summary) SummaryDTO {
	return SummaryDTO{
		WorkingDays:   s.WorkingDays,
		MinutesPerDay: s.MinutesPerDay,
		TotalMinutes:  s.TotalMinutes,
		TotalHours:    s.TotalHours.String(),
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]interface{}{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}

// writeDomainError maps domain errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, schedule.ErrPlanNotFound):
		writeError(w, http.StatusNotFound, message, err)
	case calendar.IsNotImplemented(err):
		writeError(w, http.StatusNotImplemented, message, err)
	case calendar.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
