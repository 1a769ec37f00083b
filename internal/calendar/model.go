package calendar

import (
	"fmt"
	"time"
)

// Date is a Gregorian calendar date. Month is 1-12.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date without normalization.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the Date for the given instant in its location.
func Today(now time.Time) Date {
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// String renders the canonical zero-padded YYYY-MM-DD form. This string is the
// join key between events and grid cells.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate parses the canonical YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Weekday returns the day-of-week column index, 0 for Sunday through 6 for
// Saturday.
func (d Date) Weekday() int {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return int(t.Weekday())
}

// DaysInMonth returns the number of days in the month under the proleptic
// Gregorian calendar, accounting for leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
