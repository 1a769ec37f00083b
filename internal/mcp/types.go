package mcp

import (
	"github.com/qiwen/planner-mcp/internal/calendar"
	"github.com/qiwen/planner-mcp/internal/domain/event"
)

// MonthCell is one grid slot of the month view plus the events on its date.
type MonthCell struct {
	calendar.DayCell
	Events []event.Event `json:"events,omitempty"`
}

// MonthWeek is one 7-wide week row with its free-text summary.
type MonthWeek struct {
	Cells   []MonthCell `json:"cells"`
	Summary string      `json:"summary"`
}

// MonthViewOutput is the display-layer contract for one month.
type MonthViewOutput struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Today string      `json:"today"`
	Weeks []MonthWeek `json:"weeks"`
}

type GetMonthViewInput struct {
	Year  int `json:"year" jsonschema:"Gregorian year"`
	Month int `json:"month" jsonschema:"Gregorian month, 1-12"`
}

type AddEventInput struct {
	Date  string `json:"date" jsonschema:"event date as YYYY-MM-DD"`
	Title string `json:"title" jsonschema:"non-empty display title"`
	Time  string `json:"time,omitempty" jsonschema:"optional free-text time, e.g. 09:00"`
}

type EditEventInput struct {
	ID        string `json:"id" jsonschema:"event id"`
	Title     string `json:"title" jsonschema:"new non-empty title"`
	Time      string `json:"time,omitempty" jsonschema:"new free-text time"`
	Completed bool   `json:"completed,omitempty" jsonschema:"new completion state"`
}

type EventIDInput struct {
	ID string `json:"id" jsonschema:"event id"`
}

type ListEventsInput struct {
	Date string `json:"date" jsonschema:"date as YYYY-MM-DD"`
}

type ListEventsOutput struct {
	Events []event.Event `json:"events"`
}

type DeleteEventOutput struct {
	Deleted bool `json:"deleted"`
}

type WeekSummaryInput struct {
	Year  int `json:"year" jsonschema:"Gregorian year"`
	Month int `json:"month" jsonschema:"Gregorian month, 1-12"`
	Week  int `json:"week" jsonschema:"week row index within the month grid, starting at 0"`
}

type SetWeekSummaryInput struct {
	Year    int    `json:"year" jsonschema:"Gregorian year"`
	Month   int    `json:"month" jsonschema:"Gregorian month, 1-12"`
	Week    int    `json:"week" jsonschema:"week row index within the month grid, starting at 0"`
	Content string `json:"content" jsonschema:"summary text; empty is allowed"`
}

type WeekSummaryOutput struct {
	Content string `json:"content"`
}

type YearInput struct {
	Year int `json:"year" jsonschema:"Gregorian year"`
}

type UpdateYearlyPlanInput struct {
	Year  int    `json:"year" jsonschema:"Gregorian year"`
	Field string `json:"field" jsonschema:"one of goals, work, life, other"`
	Value string `json:"value" jsonschema:"new text for the field"`
}

type ExportMonthInput struct {
	Year  int `json:"year" jsonschema:"Gregorian year"`
	Month int `json:"month" jsonschema:"Gregorian month, 1-12"`
}

type ExportMonthOutput struct {
	ICS string `json:"ics"`
}
