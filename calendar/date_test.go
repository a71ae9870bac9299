package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/schedule-engine/calendar"
)

// =============================================================================
// PARSING
// =============================================================================

func TestParseDDMMYYYY_ValidDates(t *testing.T) {
	cases := []struct {
		text  string
		year  int
		month time.Month
		day   int
	}{
		{"01-01-2024", 2024, time.January, 1},
		{"31-12-2023", 2023, time.December, 31},
		{"29-02-2024", 2024, time.February, 29}, // leap day
		{"5-7-1999", 1999, time.July, 5},        // padding optional on input
	}

	for _, c := range cases {
		d, err := calendar.ParseDDMMYYYY(c.text)
		if err != nil {
			t.Errorf("ParseDDMMYYYY(%q): unexpected error: %v", c.text, err)
			continue
		}
		if d.Year != c.year || d.Month != c.month || d.Day != c.day {
			t.Errorf("ParseDDMMYYYY(%q) = %v, want %d-%d-%d", c.text, d, c.day, c.month, c.year)
		}
	}
}

func TestParseDDMMYYYY_InvalidDates(t *testing.T) {
	cases := []string{
		"",
		"01-01",         // too few components
		"01-01-2024-05", // too many components
		"aa-bb-cccc",    // non-numeric
		"01/01/2024",    // wrong separator
		"01-13-2024",    // month out of range
		"32-01-2024",    // day out of range
		"29-02-2023",    // not a leap year
		"31-04-2024",    // April has 30 days
		"2024-01-01",    // ISO order: day component 2024 is invalid
	}

	for _, text := range cases {
		_, err := calendar.ParseDDMMYYYY(text)
		if err == nil {
			t.Errorf("ParseDDMMYYYY(%q): expected error, got none", text)
			continue
		}
		if !errors.Is(err, calendar.ErrInvalidFormat) {
			t.Errorf("ParseDDMMYYYY(%q): error %v does not wrap ErrInvalidFormat", text, err)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	// Round-trip: ParseDDMMYYYY(d.String()) == d for any normalized date.
	dates := []calendar.Date{
		calendar.NewDate(2024, time.January, 1),
		calendar.NewDate(2024, time.February, 29),
		calendar.NewDate(1999, time.December, 31),
		calendar.NewDate(2025, time.July, 4),
	}

	for _, d := range dates {
		got, err := calendar.ParseDDMMYYYY(d.String())
		if err != nil {
			t.Fatalf("round-trip of %v failed: %v", d, err)
		}
		if !got.Equal(d) {
			t.Errorf("round-trip of %v produced %v", d, got)
		}
	}
}

func TestFormat_ZeroPadding(t *testing.T) {
	d := calendar.NewDate(2024, time.March, 5)
	if got := d.String(); got != "05-03-2024" {
		t.Errorf("String() = %q, want 05-03-2024", got)
	}
}

// =============================================================================
// ARITHMETIC
// =============================================================================

func TestAddDays_Identity(t *testing.T) {
	d := calendar.NewDate(2024, time.June, 15)
	if !d.AddDays(0).Equal(d) {
		t.Errorf("AddDays(0) changed the date: %v", d.AddDays(0))
	}
}

func TestAddDays_Associativity(t *testing.T) {
	// AddDays(AddDays(d, m), n) == AddDays(d, m+n)
	d := calendar.NewDate(2023, time.November, 20)
	for _, mn := range [][2]int{{10, 5}, {40, 25}, {-10, 3}, {365, 366}} {
		m, n := mn[0], mn[1]
		split := d.AddDays(m).AddDays(n)
		direct := d.AddDays(m + n)
		if !split.Equal(direct) {
			t.Errorf("AddDays split %d+%d = %v, direct = %v", m, n, split, direct)
		}
	}
}

func TestAddDays_MonthAndYearRollover(t *testing.T) {
	cases := []struct {
		start string
		n     int
		want  string
	}{
		{"31-01-2024", 1, "01-02-2024"},
		{"31-12-2023", 1, "01-01-2024"},
		{"28-02-2024", 1, "29-02-2024"}, // leap year February
		{"28-02-2023", 1, "01-03-2023"}, // non-leap February
		{"29-02-2024", 1, "01-03-2024"},
		{"01-01-2024", 366, "01-01-2025"}, // 2024 has 366 days
		{"01-03-2024", -1, "29-02-2024"},
		{"01-01-2024", -1, "31-12-2023"},
	}

	for _, c := range cases {
		start, err := calendar.ParseDDMMYYYY(c.start)
		if err != nil {
			t.Fatalf("bad test input %q: %v", c.start, err)
		}
		if got := start.AddDays(c.n).String(); got != c.want {
			t.Errorf("%s + %d days = %s, want %s", c.start, c.n, got, c.want)
		}
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	a := calendar.NewDate(2024, time.January, 15)
	b := calendar.NewDate(2024, time.February, 1)
	c := calendar.NewDate(2025, time.January, 1)

	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Error("month ordering broken")
	}
	if b.Compare(c) != -1 {
		t.Error("year ordering broken")
	}
	if a.Compare(a) != 0 {
		t.Error("equal dates must compare 0")
	}
}

// =============================================================================
// MONTH LENGTHS AND LEAP YEARS
// =============================================================================

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.February, 2024, 29},
		{time.February, 2023, 28},
		{time.February, 1900, 28}, // century, not divisible by 400
		{time.February, 2000, 29}, // divisible by 400
		{time.January, 2024, 31},
		{time.April, 2024, 30},
		{time.December, 2024, 31},
	}

	for _, c := range cases {
		if got := calendar.DaysInMonth(c.month, c.year); got != c.want {
			t.Errorf("DaysInMonth(%s, %d) = %d, want %d", c.month, c.year, got, c.want)
		}
	}
}

func TestLeapYearProperty(t *testing.T) {
	// daysInMonth(Feb, y) == 29 iff isLeapYear(y)
	for year := 1990; year <= 2110; year++ {
		leap := calendar.IsLeapYear(year)
		feb := calendar.DaysInMonth(time.February, year)
		if leap != (feb == 29) {
			t.Errorf("year %d: IsLeapYear=%v but February has %d days", year, leap, feb)
		}
	}
}

// =============================================================================
// WEEKDAYS
// =============================================================================

func TestWeekday_EpochIsThursday(t *testing.T) {
	epoch := calendar.NewDate(1970, time.January, 1)
	if epoch.Weekday() != time.Thursday {
		t.Errorf("1970-01-01 weekday = %v, want Thursday", epoch.Weekday())
	}
	if int(time.Sunday) != 0 {
		t.Fatal("weekday convention: Sunday must be 0")
	}
}

func TestIsWeekend(t *testing.T) {
	sat := calendar.NewDate(2024, time.January, 6)
	sun := calendar.NewDate(2024, time.January, 7)
	mon := calendar.NewDate(2024, time.January, 8)

	if !sat.IsWeekend() || !sun.IsWeekend() {
		t.Error("Saturday and Sunday must be weekend days")
	}
	if mon.IsWeekend() {
		t.Error("Monday must not be a weekend day")
	}
}

func TestDayOfYear(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"01-01-2024", 1},
		{"31-01-2024", 31},
		{"01-03-2024", 61}, // leap year: 31 + 29 + 1
		{"01-03-2023", 60}, // non-leap: 31 + 28 + 1
		{"31-12-2024", 366},
		{"31-12-2023", 365},
	}

	for _, c := range cases {
		d, err := calendar.ParseDDMMYYYY(c.date)
		if err != nil {
			t.Fatalf("bad test input %q: %v", c.date, err)
		}
		if got := d.DayOfYear(); got != c.want {
			t.Errorf("DayOfYear(%s) = %d, want %d", c.date, got, c.want)
		}
	}
}
