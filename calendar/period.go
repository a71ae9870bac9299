package calendar

import "fmt"

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is an inclusive date range [Start, End]. Both boundary dates count
// as inside the range. Start > End is tolerated (an inverted period simply
// contains no days); consumers never loop forever on one.
type Period struct {
	Start Date
	End   Date
}

// ParsePeriod builds a Period from two DD-MM-YYYY strings.
func ParsePeriod(start, end string) (Period, error) {
	s, err := ParseDDMMYYYY(start)
	if err != nil {
		return Period{}, fmt.Errorf("%w: start: %w", ErrInvalidPeriod, err)
	}
	e, err := ParseDDMMYYYY(end)
	if err != nil {
		return Period{}, fmt.Errorf("%w: end: %w", ErrInvalidPeriod, err)
	}
	return Period{Start: s, End: e}, nil
}

// Contains returns true if the date is within the period [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// IsInverted reports whether the period ends before it starts.
func (p Period) IsInverted() bool {
	return p.Start.After(p.End)
}

// DayCount returns the inclusive number of days in the period. Inverted
// periods have zero days.
func (p Period) DayCount() int {
	if p.IsInverted() {
		return 0
	}
	deltaMillis := p.End.Time().UnixMilli() - p.Start.Time().UnixMilli()
	return int(deltaMillis/millisPerDay) + 1
}

// Days returns all days in the period in chronological order.
func (p Period) Days() []Date {
	var days []Date
	current := p.Start
	for current.BeforeOrEqual(p.End) {
		days = append(days, current)
		current = current.AddDays(1)
	}
	return days
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
