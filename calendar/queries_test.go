package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/schedule-engine/calendar"
)

func mustDate(t *testing.T, text string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDDMMYYYY(text)
	if err != nil {
		t.Fatalf("bad test input %q: %v", text, err)
	}
	return d
}

// =============================================================================
// TIMESTAMP CONVERSION
// =============================================================================

func TestEpochMillis_AcceptedRepresentations(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"1970-01-01", 0},
		{"01-01-1970", 0},
		{"1970-01-02T00:00:00Z", 86400000},
		{"1970-01-01T00:00:01", 1000},
		{"Thu, 01 Jan 1970 00:00:00 +0000", 0},
		{"Fri, 2 Jan 1970 00:00:00 +0000", 86400000},
	}

	for _, c := range cases {
		got, err := calendar.EpochMillis(c.text)
		if err != nil {
			t.Errorf("EpochMillis(%q): unexpected error: %v", c.text, err)
			continue
		}
		if got != c.want {
			t.Errorf("EpochMillis(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestEpochMillis_RejectsGarbage(t *testing.T) {
	_, err := calendar.EpochMillis("not a date")
	if !errors.Is(err, calendar.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestClockTime(t *testing.T) {
	if got := calendar.ClockTime(0); got != "00:00:00" {
		t.Errorf("ClockTime(0) = %q, want 00:00:00", got)
	}
	// 12h 34m 56s into the day
	if got := calendar.ClockTime(45296000); got != "12:34:56" {
		t.Errorf("ClockTime(45296000) = %q, want 12:34:56", got)
	}
	// last second of the day
	if got := calendar.ClockTime(86399000); got != "23:59:59" {
		t.Errorf("ClockTime(86399000) = %q, want 23:59:59", got)
	}
}

func TestDaysBetween_Inclusive(t *testing.T) {
	day := int64(86400000)

	if got := calendar.DaysBetween(0, 0); got != 1 {
		t.Errorf("same instant should count 1 day, got %d", got)
	}
	if got := calendar.DaysBetween(0, 14*day); got != 15 {
		t.Errorf("14 whole days apart should count 15, got %d", got)
	}
	// a partial day does not add a day
	if got := calendar.DaysBetween(0, day-1); got != 1 {
		t.Errorf("less than one day apart should count 1, got %d", got)
	}
}

// =============================================================================
// LOCALE FORMATTING
// =============================================================================

func TestFormatUS_NoZeroPadding(t *testing.T) {
	if got := calendar.FormatUS(0); got != "1/1/1970, 12:00:00 AM" {
		t.Errorf("FormatUS(0) = %q, want 1/1/1970, 12:00:00 AM", got)
	}

	afternoon := time.Date(2024, time.September, 5, 13, 5, 7, 0, time.UTC).UnixMilli()
	if got := calendar.FormatUS(afternoon); got != "9/5/2024, 1:05:07 PM" {
		t.Errorf("FormatUS = %q, want 9/5/2024, 1:05:07 PM", got)
	}
}

func TestFormatLocalized_OnlyUSEnglish(t *testing.T) {
	got, err := calendar.FormatLocalized(0, "en-US")
	if err != nil {
		t.Fatalf("en-US must be supported: %v", err)
	}
	if got != calendar.FormatUS(0) {
		t.Errorf("en-US output diverged from FormatUS: %q", got)
	}

	_, err = calendar.FormatLocalized(0, "fr-FR")
	if !calendar.IsNotImplemented(err) {
		t.Errorf("fr-FR must fail with ErrNotImplemented, got %v", err)
	}
}

// =============================================================================
// WEEKDAYS
// =============================================================================

func TestWeekdayName(t *testing.T) {
	if got := calendar.WeekdayName(mustDate(t, "01-01-1970")); got != "Thursday" {
		t.Errorf("1970-01-01 = %q, want Thursday", got)
	}
	if got := calendar.WeekdayName(mustDate(t, "07-01-2024")); got != "Sunday" {
		t.Errorf("07-01-2024 = %q, want Sunday", got)
	}
}

func TestNextFriday(t *testing.T) {
	// From a Monday
	if got := calendar.NextFriday(mustDate(t, "01-01-2024")); got.String() != "05-01-2024" {
		t.Errorf("NextFriday(01-01-2024) = %s, want 05-01-2024", got)
	}
	// From a Friday: strictly after, so the following week
	if got := calendar.NextFriday(mustDate(t, "05-01-2024")); got.String() != "12-01-2024" {
		t.Errorf("NextFriday(05-01-2024) = %s, want 12-01-2024", got)
	}
}

func TestNextFridayThe13th(t *testing.T) {
	// The first Friday the 13th after 2024-01-01 is September 13th, 2024.
	if got := calendar.NextFridayThe13th(mustDate(t, "01-01-2024")); got.String() != "13-09-2024" {
		t.Errorf("NextFridayThe13th(01-01-2024) = %s, want 13-09-2024", got)
	}
	// And the next one after that is December 13th, 2024.
	if got := calendar.NextFridayThe13th(mustDate(t, "13-09-2024")); got.String() != "13-12-2024" {
		t.Errorf("NextFridayThe13th(13-09-2024) = %s, want 13-12-2024", got)
	}
}

func TestWeekendDays(t *testing.T) {
	cases := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.January, 2024, 8},
		{time.February, 2024, 8},
		{time.June, 2024, 10},
	}

	for _, c := range cases {
		if got := calendar.WeekendDays(c.month, c.year); got != c.want {
			t.Errorf("WeekendDays(%s %d) = %d, want %d", c.month, c.year, got, c.want)
		}
	}
}

// =============================================================================
// WEEK NUMBERS AND QUARTERS
// =============================================================================

func TestWeekNumber_FirstWeekContainsJan1(t *testing.T) {
	// 2024: January 1st is a Monday, so weeks align with the calendar.
	if got := calendar.WeekNumber(mustDate(t, "01-01-2024")); got != 1 {
		t.Errorf("01-01-2024 week = %d, want 1", got)
	}
	if got := calendar.WeekNumber(mustDate(t, "07-01-2024")); got != 1 {
		t.Errorf("07-01-2024 week = %d, want 1", got)
	}
	if got := calendar.WeekNumber(mustDate(t, "08-01-2024")); got != 2 {
		t.Errorf("08-01-2024 week = %d, want 2", got)
	}
	if got := calendar.WeekNumber(mustDate(t, "31-12-2024")); got != 53 {
		t.Errorf("31-12-2024 week = %d, want 53", got)
	}
}

func TestWeekNumber_UniformRuleAcrossYears(t *testing.T) {
	// Years whose January 1st is a Sunday: the first week is just that one
	// day, and week 2 starts on Monday January 2nd. The rule holds for every
	// such year, 2017 included.
	for _, year := range []int{2017, 2023} {
		jan1 := calendar.NewDate(year, time.January, 1)
		if jan1.Weekday() != time.Sunday {
			t.Fatalf("test premise broken: 01-01-%d is %v", year, jan1.Weekday())
		}
		if got := calendar.WeekNumber(jan1); got != 1 {
			t.Errorf("01-01-%d week = %d, want 1", year, got)
		}
		if got := calendar.WeekNumber(jan1.AddDays(1)); got != 2 {
			t.Errorf("02-01-%d week = %d, want 2", year, got)
		}
	}
}

func TestQuarter(t *testing.T) {
	want := map[time.Month]int{
		time.January: 1, time.February: 1, time.March: 1,
		time.April: 2, time.May: 2, time.June: 2,
		time.July: 3, time.August: 3, time.September: 3,
		time.October: 4, time.November: 4, time.December: 4,
	}

	for month, q := range want {
		if got := calendar.Quarter(month); got != q {
			t.Errorf("Quarter(%s) = %d, want %d", month, got, q)
		}
	}
}
