package calendar

import "time"

// Lunar is the lunar-calendar reading for a single Gregorian date, as reported
// by the Almanac.
type Lunar struct {
	// DayName is the lunar day name (e.g. 初五).
	DayName string
	// MonthName is the lunar month name (e.g. 正月).
	MonthName string
	// FirstDay is true when the date is the first day of its lunar month.
	FirstDay bool
}

// HolidayStatus is an externally defined exception for a date: a public
// holiday (IsWorkday false) or a compensatory workday (IsWorkday true). It
// supersedes the plain Saturday/Sunday weekend rule.
type HolidayStatus struct {
	Name      string `json:"name"`
	IsWorkday bool   `json:"is_workday"`
}

// Almanac looks up lunar-calendar and public-holiday data for Gregorian dates.
// Implementations must be pure: same date in, same answer out.
type Almanac interface {
	// Lunar returns the lunar reading for the date.
	Lunar(year int, month time.Month, day int) Lunar
	// Holiday returns the holiday/workday override for the date, or nil when
	// no override exists. A nil result says nothing about weekends.
	Holiday(year int, month time.Month, day int) *HolidayStatus
}

// DayKind is the single classification a date ultimately carries.
type DayKind string

const (
	KindToday   DayKind = "today"
	KindHoliday DayKind = "holiday"
	KindWeekend DayKind = "weekend"
	KindWorkday DayKind = "workday"
)

// Annotation is the per-day display metadata derived from the almanac and the
// Gregorian weekday.
type Annotation struct {
	LunarLabel string
	Holiday    *HolidayStatus
	Weekend    bool
}

// Annotate combines a date with the almanac. The lunar label is the day name,
// except on the first day of a lunar month where the month name is shown
// instead. Weekend classification comes from the Gregorian weekday columns
// (Sunday and Saturday), independent of any holiday override.
func Annotate(a Almanac, year int, month time.Month, day int) Annotation {
	lunar := a.Lunar(year, month, day)
	label := lunar.DayName
	if lunar.FirstDay {
		label = lunar.MonthName
	}

	wd := NewDate(year, month, day).Weekday()
	return Annotation{
		LunarLabel: label,
		Holiday:    a.Holiday(year, month, day),
		Weekend:    wd == 0 || wd == 6,
	}
}

// Classify reduces a date to a single DayKind. Precedence: today, then an
// explicit holiday override, then weekend, then plain workday.
func (an Annotation) Classify(date, today Date) DayKind {
	switch {
	case date == today:
		return KindToday
	case an.Holiday != nil:
		return KindHoliday
	case an.Weekend:
		return KindWeekend
	default:
		return KindWorkday
	}
}
