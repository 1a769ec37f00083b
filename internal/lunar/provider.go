// Package lunar adapts the lunar-go almanac (Chinese lunar calendar and
// statutory holiday tables) to the calendar.Almanac interface. The core never
// imports lunar-go directly.
package lunar

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/HolidayUtil"
	lunargo "github.com/6tail/lunar-go/calendar"

	"github.com/qiwen/planner-mcp/internal/calendar"
)

// Provider implements calendar.Almanac. Stateless; lookups are pure.
type Provider struct{}

// New creates a Provider.
func New() *Provider {
	return &Provider{}
}

// Lunar returns the lunar reading for a Gregorian date.
func (p *Provider) Lunar(year int, month time.Month, day int) calendar.Lunar {
	l := lunargo.NewSolarFromYmd(year, int(month), day).GetLunar()
	return calendar.Lunar{
		DayName:   l.GetDayInChinese(),
		MonthName: l.GetMonthInChinese() + "月",
		FirstDay:  l.GetDay() == 1,
	}
}

// Holiday returns the statutory holiday/workday override for a Gregorian
// date, or nil when the date has no override.
func (p *Provider) Holiday(year int, month time.Month, day int) *calendar.HolidayStatus {
	h := HolidayUtil.GetHoliday(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
	if h == nil {
		return nil
	}
	return &calendar.HolidayStatus{
		Name:      h.GetName(),
		IsWorkday: h.IsWork(),
	}
}
