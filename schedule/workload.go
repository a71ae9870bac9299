package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/warp/schedule-engine/calendar"
)

// =============================================================================
// WORKLOAD - Minutes/hours implied by a generated schedule
// =============================================================================

// DefaultMinutesPerDay is a standard eight-hour working day.
const DefaultMinutesPerDay = 480

const minutesPerHour = 60

// Workload describes how much work a single working day carries.
type Workload struct {
	MinutesPerDay int
}

// Validate checks the workload against a calendar day's bounds.
func (w Workload) Validate() error {
	if w.MinutesPerDay < 1 || w.MinutesPerDay > 24*minutesPerHour {
		return calendar.ErrInvalidArgument
	}
	return nil
}

// Summary is the total workload of a generated schedule. Hours are exact
// decimals, not floats: 7 working days of 450 minutes is 52.5 hours, never
// 52.499999.
type Summary struct {
	WorkingDays   int
	MinutesPerDay int
	TotalMinutes  int
	TotalHours    decimal.Decimal
}

// Summarize reports the workload implied by the given working dates. A zero
// Workload falls back to DefaultMinutesPerDay.
func Summarize(dates []calendar.Date, w Workload) Summary {
	if w.MinutesPerDay == 0 {
		w.MinutesPerDay = DefaultMinutesPerDay
	}
	return NewSummary(len(dates), w.MinutesPerDay)
}

// NewSummary builds a Summary from counts alone. Used when rehydrating a
// stored run, where the dates themselves are kept separately.
func NewSummary(workingDays, minutesPerDay int) Summary {
	totalMinutes := workingDays * minutesPerDay
	hours := decimal.NewFromInt(int64(totalMinutes)).
		Div(decimal.NewFromInt(minutesPerHour))

	return Summary{
		WorkingDays:   workingDays,
		MinutesPerDay: minutesPerDay,
		TotalMinutes:  totalMinutes,
		TotalHours:    hours,
	}
}
