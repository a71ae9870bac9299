/*
generator.go - Work-schedule generation

PURPOSE:

	Enumerates every working-day date of a repeating work/off cycle that
	falls within an inclusive date period.

ALGORITHM:

	A cursor starts at the period start. Each repetition emits the cursor
	and advances it by one day, WorkDays times, then advances it OffDays
	more days without emitting. Generation stops the instant the cursor
	passes the period end, mid-repetition included, so no date after the
	end is ever emitted.

TERMINATION:

	The cursor-passes-end check terminates every well-formed input. As a
	safety net against malformed input, total iterations are additionally
	bounded by the inclusive day-span of the period plus one full cycle
	length.

SEE ALSO:
  - cycle.go: Cycle validation
  - calendar/period.go: Period semantics
*/
package schedule

import "github.com/warp/schedule-engine/calendar"

// Generate returns the working-day dates of the cycle within the period, in
// chronological order. An inverted period yields an empty result and no
// error. A cycle with WorkDays < 1 fails with calendar.ErrInvalidArgument.
func Generate(period calendar.Period, cycle Cycle) ([]calendar.Date, error) {
	if err := cycle.Validate(); err != nil {
		return nil, err
	}
	if period.IsInverted() {
		return nil, nil
	}

	var working []calendar.Date
	cursor := period.Start

	// Hard bound on cursor advances. The exceeds-end checks below terminate
	// on their own; this guards against inputs they cannot reason about.
	budget := period.DayCount() + cycle.Length()

	for {
		for i := 0; i < cycle.WorkDays; i++ {
			if cursor.After(period.End) || budget <= 0 {
				return working, nil
			}
			working = append(working, cursor)
			cursor = cursor.AddDays(1)
			budget--
		}
		for i := 0; i < cycle.OffDays; i++ {
			if cursor.After(period.End) || budget <= 0 {
				return working, nil
			}
			cursor = cursor.AddDays(1)
			budget--
		}
	}
}

// GenerateStrings is Generate with each date formatted as DD-MM-YYYY.
func GenerateStrings(period calendar.Period, cycle Cycle) ([]string, error) {
	dates, err := Generate(period, cycle)
	if err != nil {
		return nil, err
	}
	return FormatAll(dates), nil
}

// FormatAll renders dates as DD-MM-YYYY strings, preserving order.
func FormatAll(dates []calendar.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}
