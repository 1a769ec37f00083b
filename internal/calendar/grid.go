package calendar

import "time"

// DaysInWeek is the fixed width of a week row.
const DaysInWeek = 7

// EmptyDay marks a filler slot in a week row (before day 1 or after the last
// day of the month).
const EmptyDay = 0

// Week is one 7-wide row of the month grid. Slots hold a day-of-month or
// EmptyDay.
type Week [DaysInWeek]int

// BuildGrid lays out a month as consecutive 7-wide week rows. The first row is
// left-padded with EmptyDay slots so that day 1 lands in its Gregorian weekday
// column (Sunday first); the last row is right-padded to keep the grid
// rectangular. Rows are cut from the padded sequence in groups of 7, not from
// calendar week boundaries.
func BuildGrid(year int, month time.Month) []Week {
	lead := NewDate(year, month, 1).Weekday()
	days := DaysInMonth(year, month)

	total := lead + days
	rows := (total + DaysInWeek - 1) / DaysInWeek

	grid := make([]Week, rows)
	for day := 1; day <= days; day++ {
		idx := lead + day - 1
		grid[idx/DaysInWeek][idx%DaysInWeek] = day
	}
	return grid
}

// WeekIndexOf returns the grid row the given day-of-month falls into.
func WeekIndexOf(year int, month time.Month, day int) int {
	lead := NewDate(year, month, 1).Weekday()
	return (lead + day - 1) / DaysInWeek
}
