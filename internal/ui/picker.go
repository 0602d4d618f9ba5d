package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyexplorer/internal/booking"
	"github.com/five82/skyexplorer/internal/calendar"
)

// pickerModal draws the month grid of an open date picker and moves a day
// cursor over it. The cursor only ever rests on real days.
type pickerModal struct {
	ctrl   *booking.Controller
	field  booking.DateField
	grid   calendar.MonthGrid
	cursor calendar.Day
	today  calendar.Day
}

// newPickerModal wraps a controller whose picker is already open.
func newPickerModal(ctrl *booking.Controller, now time.Time) pickerModal {
	grid, _ := ctrl.Grid()
	state := ctrl.State()
	m := pickerModal{
		ctrl:  ctrl,
		field: state.ActiveField,
		grid:  grid,
	}
	if now.Year() == grid.Year && now.Month() == grid.Month {
		m.today = calendar.Day(now.Day())
	}
	m.cursor = m.today
	if current := state.DateFor(m.field); current != nil &&
		current.Year == grid.Year && current.Month == int(grid.Month) {
		m.cursor = calendar.Day(current.Day)
	}
	if !grid.Contains(m.cursor) {
		m.cursor = 1
	}
	return m
}

func (m pickerModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		m.ctrl.ClosePicker()
		return m, nil, true
	case key.Matches(keyMsg, keys.Confirm):
		if m.ctrl.SelectDay(m.cursor) {
			return m, nil, true
		}
		return m, nil, false
	case key.Matches(keyMsg, keys.Left):
		m.move(-1)
	case key.Matches(keyMsg, keys.Right):
		m.move(1)
	case key.Matches(keyMsg, keys.Up):
		m.move(-7)
	case key.Matches(keyMsg, keys.Down):
		m.move(7)
	}
	return m, nil, false
}

func (m *pickerModal) move(delta int) {
	next := calendar.Day(int(m.cursor) + delta)
	if m.grid.Contains(next) {
		m.cursor = next
	}
}

func (m pickerModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder

	title := "Departure date"
	if m.field == booking.FieldReturn {
		title = "Return date"
	}
	b.WriteString(styles.MutedText.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render(m.grid.Title()))
	b.WriteString("\n\n")

	for _, h := range calendar.WeekdayHeaders {
		b.WriteString(styles.MutedText.Width(4).Align(lipgloss.Right).Render(h))
	}
	b.WriteString("\n")

	for _, week := range m.grid.Weeks() {
		for _, day := range week {
			style := styles.DayCell
			switch {
			case day.IsEmpty():
			case day == m.cursor:
				style = styles.DayCursor
			case day == m.today:
				style = styles.DayToday
			}
			b.WriteString(style.Render(day.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("←↑↓→ move  enter select  esc close"))

	return placeModal(theme, width, height, b.String())
}
