package summary

import (
	"fmt"
	"time"
)

// Key identifies a weekly summary slot. The week index is scoped to the
// displayed month's grid, not to ISO weeks: a physical week spanning two
// months owns one independent slot per month it appears in.
type Key struct {
	Year  int
	Month time.Month
	Week  int
}

// ID renders the derived string identity used in the persisted form.
func (k Key) ID() string {
	return fmt.Sprintf("%d-%d-%d", k.Year, int(k.Month), k.Week)
}

// Summary is one free-text note attached to a week row of a month grid.
type Summary struct {
	ID        string `json:"id"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	WeekIndex int    `json:"week_index"`
	Content   string `json:"content"`
}

// Key reconstructs the structured key from the stored fields.
func (s Summary) Key() Key {
	return Key{Year: s.Year, Month: time.Month(s.Month), Week: s.WeekIndex}
}
