// Package calendar builds the month grid shown by the date picker.
//
// A grid always starts on Sunday: the first row is padded with empty cells up
// to the weekday of the 1st, followed by the day numbers of the month. Only the
// month of the reference date is ever produced; there is no navigation.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Day is a single cell of a month grid. The zero value is an empty padding
// cell that can never be selected.
type Day int

// Empty is the padding cell placed before the 1st of the month.
const Empty Day = 0

// IsEmpty reports whether the cell is padding.
func (d Day) IsEmpty() bool {
	return d <= 0
}

// String renders the day number, or an empty string for padding.
func (d Day) String() string {
	if d.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%d", int(d))
}

// WeekdayHeaders are the column titles of a grid row.
var WeekdayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthGrid is the padded cell sequence for one calendar month.
type MonthGrid struct {
	Year  int
	Month time.Month
	Days  []Day
}

// Generate returns the grid for the month containing ref.
func Generate(ref time.Time) MonthGrid {
	year, month := ref.Year(), ref.Month()
	leading := int(FirstWeekday(year, month))
	total := DaysInMonth(year, month)

	days := make([]Day, 0, leading+total)
	for i := 0; i < leading; i++ {
		days = append(days, Empty)
	}
	for d := 1; d <= total; d++ {
		days = append(days, Day(d))
	}
	return MonthGrid{Year: year, Month: month, Days: days}
}

// FirstWeekday returns the weekday of the 1st of the month.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// DaysInMonth returns the number of days in the month. Day 0 of the following
// month normalizes to the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeap reports whether year has a February 29th.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Leading returns the number of padding cells before the 1st.
func (g MonthGrid) Leading() int {
	n := 0
	for _, d := range g.Days {
		if !d.IsEmpty() {
			break
		}
		n++
	}
	return n
}

// Len returns the number of real days in the grid.
func (g MonthGrid) Len() int {
	return len(g.Days) - g.Leading()
}

// MonthIndex returns the zero-based month (January = 0).
func (g MonthGrid) MonthIndex() int {
	return int(g.Month) - 1
}

// Title returns the heading shown above the grid, e.g. "March 2025".
func (g MonthGrid) Title() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// Contains reports whether day is a selectable cell of this grid.
func (g MonthGrid) Contains(day Day) bool {
	return !day.IsEmpty() && int(day) <= g.Len()
}

// Weeks splits the grid into rows of seven, padding the final row.
func (g MonthGrid) Weeks() [][]Day {
	var weeks [][]Day
	for start := 0; start < len(g.Days); start += 7 {
		row := make([]Day, 7)
		end := start + 7
		if end > len(g.Days) {
			end = len(g.Days)
		}
		copy(row, g.Days[start:end])
		weeks = append(weeks, row)
	}
	return weeks
}

// Index returns the cell position of day, or -1 when it is not in the grid.
func (g MonthGrid) Index(day Day) int {
	if !g.Contains(day) {
		return -1
	}
	return g.Leading() + int(day) - 1
}

// Format renders the grid as plain text in the style of cal(1).
func (g MonthGrid) Format() string {
	var b strings.Builder
	b.WriteString(g.Title())
	b.WriteString("\n")
	for i, h := range WeekdayHeaders {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(h)
	}
	b.WriteString("\n")
	for _, week := range g.Weeks() {
		cells := make([]string, len(week))
		for i, d := range week {
			cells[i] = fmt.Sprintf("%3s", d.String())
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}
	return b.String()
}
