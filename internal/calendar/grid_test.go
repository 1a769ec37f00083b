package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28}, // century, not a leap year
		{2000, time.February, 29}, // divisible by 400
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tc := range cases {
		require.Equal(t, tc.days, DaysInMonth(tc.year, tc.month), "%d-%d", tc.year, tc.month)
	}
}

func TestBuildGrid_FlattenedSequence(t *testing.T) {
	// Flattening the grid and removing padding must give 1..daysInMonth in
	// order, for any month.
	for year := 2020; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := BuildGrid(year, month)

			var days []int
			for _, week := range grid {
				for _, day := range week {
					if day != EmptyDay {
						days = append(days, day)
					}
				}
			}

			require.Len(t, days, DaysInMonth(year, month), "%d-%d", year, month)
			for i, day := range days {
				require.Equal(t, i+1, day, "%d-%d", year, month)
			}
		}
	}
}

func TestBuildGrid_LeadingPadding(t *testing.T) {
	for year := 2020; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := BuildGrid(year, month)
			lead := NewDate(year, month, 1).Weekday()

			for col := 0; col < lead; col++ {
				require.Equal(t, EmptyDay, grid[0][col])
			}
			require.Equal(t, 1, grid[0][lead], "day 1 must land in its weekday column")
		}
	}
}

func TestBuildGrid_LeapFebruary(t *testing.T) {
	// 2024-02-01 is a Thursday (column 4).
	grid := BuildGrid(2024, time.February)

	require.Equal(t, 4, NewDate(2024, time.February, 1).Weekday())
	require.Equal(t, Week{0, 0, 0, 0, 1, 2, 3}, grid[0])

	count := 0
	for _, week := range grid {
		for _, day := range week {
			if day != EmptyDay {
				count++
			}
		}
	}
	require.Equal(t, 29, count)
}

func TestBuildGrid_RowsAreRectangular(t *testing.T) {
	grid := BuildGrid(2024, time.June) // 30 days starting on a Saturday: 6 rows
	require.Len(t, grid, 6)
	require.Equal(t, Week{30, 0, 0, 0, 0, 0, 0}, grid[len(grid)-1])
}

func TestWeekIndexOf(t *testing.T) {
	// 2024-05-01 is a Wednesday; days 1-4 are in row 0, day 5 starts row 1.
	require.Equal(t, 0, WeekIndexOf(2024, time.May, 1))
	require.Equal(t, 0, WeekIndexOf(2024, time.May, 4))
	require.Equal(t, 1, WeekIndexOf(2024, time.May, 5))
	require.Equal(t, 4, WeekIndexOf(2024, time.May, 31))
}

func TestDateString(t *testing.T) {
	require.Equal(t, "2024-05-01", NewDate(2024, time.May, 1).String())
	require.Equal(t, "0800-01-09", NewDate(800, time.January, 9).String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	require.Equal(t, NewDate(2024, time.May, 1), d)

	_, err = ParseDate("2024-5-1")
	require.Error(t, err)
	_, err = ParseDate("")
	require.Error(t, err)
	_, err = ParseDate("2024-02-30")
	require.Error(t, err)
}
