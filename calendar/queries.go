/*
queries.go - One-shot calendar queries

PURPOSE:

	The simple lookups of the toolkit: timestamp conversion, clock and
	US-locale formatting, weekday names, recurring-day search, weekend
	counting, week numbers and quarters. Each is a pure function over
	explicit inputs; none reads the host clock.

CONVENTIONS:
  - All instants are interpreted and rendered in UTC.
  - Weekday indexing follows time.Weekday: Sunday == 0.
  - Week numbering: the first week of a year is the one containing
    January 1st, and weeks start on Monday. The rule is uniform for
    all years.

SEE ALSO:
  - date.go: Date type and primitives these queries are built on
  - errors.go: ErrInvalidFormat, ErrNotImplemented
*/
package calendar

import (
	"fmt"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// =============================================================================
// TIMESTAMP CONVERSION
// =============================================================================

// epochLayouts are tried in order by EpochMillis. Layouts without a zone
// are interpreted as UTC.
var epochLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
}

// EpochMillis converts date text to milliseconds since the Unix epoch, UTC.
// Accepted representations: ISO 8601, RFC-2822-style, and DD-MM-YYYY.
func EpochMillis(text string) (int64, error) {
	for _, layout := range epochLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t.UnixMilli(), nil
		}
	}
	if d, err := ParseDDMMYYYY(text); err == nil {
		return d.Time().UnixMilli(), nil
	}
	return 0, &ParseError{Input: text, Reason: "unrecognized date representation"}
}

// ClockTime renders the time-of-day of an instant as zero-padded 24-hour
// HH:MM:SS, UTC.
func ClockTime(millis int64) string {
	return time.UnixMilli(millis).UTC().Format("15:04:05")
}

// DaysBetween returns the inclusive number of calendar days covered by two
// instants: floor of the millisecond delta over one day, plus one.
func DaysBetween(fromMillis, toMillis int64) int {
	return int((toMillis-fromMillis)/millisPerDay) + 1
}

// =============================================================================
// LOCALE FORMATTING
// =============================================================================

// FormatUS renders an instant as "M/D/YYYY, h:mm:ss AM/PM" with no zero
// padding on month, day or hour.
func FormatUS(millis int64) string {
	return time.UnixMilli(millis).UTC().Format("1/2/2006, 3:04:05 PM")
}

// FormatLocalized renders an instant in the given locale. Only "en-US" is
// provided; every other locale fails with ErrNotImplemented.
func FormatLocalized(millis int64, locale string) (string, error) {
	if locale != "en-US" {
		return "", fmt.Errorf("%w: locale %q", ErrNotImplemented, locale)
	}
	return FormatUS(millis), nil
}

// =============================================================================
// WEEKDAYS
// =============================================================================

// WeekdayName returns the English weekday name, "Sunday".."Saturday".
func WeekdayName(d Date) string {
	return d.Weekday().String()
}

// NextFriday returns the first Friday strictly after the given date.
func NextFriday(d Date) Date {
	current := d.AddDays(1)
	for current.Weekday() != time.Friday {
		current = current.AddDays(1)
	}
	return current
}

// NextFridayThe13th returns the first Friday falling on the 13th of a month
// strictly after the given date.
func NextFridayThe13th(d Date) Date {
	current := d.AddDays(1)
	for current.Day != 13 || current.Weekday() != time.Friday {
		current = current.AddDays(1)
	}
	return current
}

// WeekendDays counts the Saturdays and Sundays in a month.
func WeekendDays(month time.Month, year int) int {
	count := 0
	for day := 1; day <= DaysInMonth(month, year); day++ {
		if (Date{Year: year, Month: month, Day: day}).IsWeekend() {
			count++
		}
	}
	return count
}

// =============================================================================
// WEEK NUMBERS AND QUARTERS
// =============================================================================

// WeekNumber returns the week of the year the date falls into. The first
// week is the one containing January 1st; week boundaries are Mondays.
func WeekNumber(d Date) int {
	jan1 := Date{Year: d.Year, Month: time.January, Day: 1}
	// Days of the week containing Jan 1 that precede Jan 1 (Monday == 0).
	offset := (int(jan1.Weekday()) + 6) % 7
	return (d.DayOfYear()-1+offset)/7 + 1
}

// Quarter returns the calendar quarter (1-4) a month belongs to.
func Quarter(month time.Month) int {
	return (int(month)-1)/3 + 1
}
