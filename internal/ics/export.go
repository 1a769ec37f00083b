// Package ics renders planner events as an iCalendar document. Events carry a
// date but only free-text time, so they export as all-day entries with the
// time text preserved in the description.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/qiwen/planner-mcp/internal/calendar"
	"github.com/qiwen/planner-mcp/internal/domain/event"
)

const productID = "-//planner-mcp//calendar//EN"

// ExportMonth serializes the given month's events. now feeds DTSTAMP so
// output is reproducible in tests.
func ExportMonth(events []event.Event, year int, month time.Month, now time.Time) (string, error) {
	var filtered []event.Event
	for _, ev := range events {
		d, err := calendar.ParseDate(ev.Date)
		if err != nil {
			continue
		}
		if d.Year == year && d.Month == month {
			filtered = append(filtered, ev)
		}
	}
	return Export(filtered, now)
}

// Export serializes events in store order.
func Export(events []event.Event, now time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range events {
		d, err := calendar.ParseDate(ev.Date)
		if err != nil {
			return "", fmt.Errorf("event %s: %w", ev.ID, err)
		}
		start := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)

		ve := cal.AddEvent(ev.ID + "@planner-mcp")
		ve.SetDtStampTime(now)
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(start.AddDate(0, 0, 1))
		ve.SetSummary(ev.Title)
		if ev.Time != "" {
			ve.SetDescription(ev.Time)
		}
	}

	return cal.Serialize(), nil
}
