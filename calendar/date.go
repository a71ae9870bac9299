package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// DATE - Normalized Gregorian calendar date (this IS a calendar system)
// =============================================================================

// Date is a calendar date with no clock or zone component. A Date is always
// normalized: Month is 1-12 and Day is valid for Month/Year. All arithmetic
// returns new values; a Date is never mutated in place.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}.normalize()
}

func Today() Date {
	now := time.Now().UTC()
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// ParseDDMMYYYY parses a "DD-MM-YYYY" string into a Date. The text must split
// into exactly three numeric components, the month must be 1-12 and the day
// must exist in that month of that year.
func ParseDDMMYYYY(text string) (Date, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return Date{}, &ParseError{Input: text, Reason: "expected DD-MM-YYYY"}
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, &ParseError{Input: text, Reason: "non-numeric component " + strconv.Quote(p)}
		}
		nums[i] = n
	}

	day, month, year := nums[0], time.Month(nums[1]), nums[2]
	if month < time.January || month > time.December {
		return Date{}, &ParseError{Input: text, Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if day < 1 || day > DaysInMonth(month, year) {
		return Date{}, &ParseError{Input: text, Reason: fmt.Sprintf("day %d out of range for %s %d", day, month, year)}
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// Comparison
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) Before(other Date) bool        { return d.Compare(other) < 0 }
func (d Date) Equal(other Date) bool         { return d.Compare(other) == 0 }
func (d Date) After(other Date) bool         { return d.Compare(other) > 0 }
func (d Date) BeforeOrEqual(other Date) bool { return d.Compare(other) <= 0 }
func (d Date) AfterOrEqual(other Date) bool  { return d.Compare(other) >= 0 }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Arithmetic

// AddDays returns the date n days after d (before, for negative n), rolling
// over month and year boundaries, including leap-year February.
func (d Date) AddDays(n int) Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.Day + n}.normalize()
}

// normalize rolls an out-of-range Day into the surrounding months until the
// date is valid again. The month walk is bounded by the number of months
// crossed, not the number of days.
func (d Date) normalize() Date {
	for d.Month > time.December {
		d.Month -= 12
		d.Year++
	}
	for d.Month < time.January {
		d.Month += 12
		d.Year--
	}
	for d.Day > DaysInMonth(d.Month, d.Year) {
		d.Day -= DaysInMonth(d.Month, d.Year)
		d.Month++
		if d.Month > time.December {
			d.Month = time.January
			d.Year++
		}
	}
	for d.Day < 1 {
		d.Month--
		if d.Month < time.January {
			d.Month = time.December
			d.Year--
		}
		d.Day += DaysInMonth(d.Month, d.Year)
	}
	return d
}

// Properties
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
func (d Date) IsZero() bool { return d == Date{} }

// DayOfYear returns the 1-based ordinal of d within its year.
func (d Date) DayOfYear() int {
	n := d.Day
	for m := time.January; m < d.Month; m++ {
		n += DaysInMonth(m, d.Year)
	}
	return n
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as DD-MM-YYYY with zero-padded day and month.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%d", d.Day, d.Month, d.Year)
}

// =============================================================================
// MONTH AND YEAR ARITHMETIC
// =============================================================================

// monthDays[m] is the number of days in month m of a non-leap year.
var monthDays = [...]int{
	time.January:   31,
	time.February:  28,
	time.March:     31,
	time.April:     30,
	time.May:       31,
	time.June:      30,
	time.July:      31,
	time.August:    31,
	time.September: 30,
	time.October:   31,
	time.November:  30,
	time.December:  31,
}

// DaysInMonth returns the number of days in the given month of the given
// year. February is 29 in leap years. Months outside 1-12 return 0.
func DaysInMonth(month time.Month, year int) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4
// and (not divisible by 100, or divisible by 400).
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
