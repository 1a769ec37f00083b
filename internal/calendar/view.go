package calendar

import "time"

// DayCell is one annotated grid slot of a month view. Filler slots carry only
// their WeekIndex.
type DayCell struct {
	Day        int            `json:"day"`
	Date       string         `json:"date,omitempty"`
	IsToday    bool           `json:"is_today,omitempty"`
	LunarLabel string         `json:"lunar_label,omitempty"`
	Holiday    *HolidayStatus `json:"holiday,omitempty"`
	Kind       DayKind        `json:"kind,omitempty"`
	WeekIndex  int            `json:"week_index"`
}

// MonthView is the fully annotated grid for one (year, month), laid out as
// 7-wide week rows.
type MonthView struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Weeks [][]DayCell `json:"weeks"`
}

// BuildMonthView annotates every day cell of the month grid. The reference
// date for the today flag is passed in so the result is deterministic.
func BuildMonthView(a Almanac, year int, month time.Month, today Date) MonthView {
	grid := BuildGrid(year, month)

	weeks := make([][]DayCell, len(grid))
	for wi, row := range grid {
		cells := make([]DayCell, DaysInWeek)
		for ci, day := range row {
			cell := DayCell{Day: day, WeekIndex: wi}
			if day != EmptyDay {
				date := NewDate(year, month, day)
				an := Annotate(a, year, month, day)
				cell.Date = date.String()
				cell.IsToday = date == today
				cell.LunarLabel = an.LunarLabel
				cell.Holiday = an.Holiday
				cell.Kind = an.Classify(date, today)
			}
			cells[ci] = cell
		}
		weeks[wi] = cells
	}

	return MonthView{Year: year, Month: int(month), Weeks: weeks}
}
