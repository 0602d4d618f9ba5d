package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyexplorer/internal/booking"
)

// formField identifies a focusable row of the search form.
type formField int

const (
	fieldTrip formField = iota
	fieldFrom
	fieldTo
	fieldDepart
	fieldReturn
	fieldPassengers
	fieldSearch
)

// visibleFields lists the focusable fields in order. The return date is only
// offered for round trips.
func visibleFields(trip booking.TripType) []formField {
	fields := []formField{fieldTrip, fieldFrom, fieldTo, fieldDepart}
	if trip.NeedsReturn() {
		fields = append(fields, fieldReturn)
	}
	return append(fields, fieldPassengers, fieldSearch)
}

func newPassengerInput(count int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 2
	ti.Width = 3
	ti.SetValue(strconv.Itoa(count))
	ti.CursorEnd()
	return ti
}

// handleFormKey applies a key to the focused field.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	}

	switch m.focus {
	case fieldTrip:
		switch {
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Confirm):
			m.form.SetTripType(m.form.TripType.Next())
		case key.Matches(msg, m.keys.Left):
			m.form.SetTripType(m.form.TripType.Prev())
		}

	case fieldFrom, fieldTo:
		step := 0
		switch {
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Confirm):
			step = 1
		case key.Matches(msg, m.keys.Left):
			step = -1
		}
		if step != 0 {
			if m.focus == fieldFrom {
				m.form.SetOrigin(booking.NextAirport(m.form.Origin, step))
			} else {
				m.form.SetDestination(booking.NextAirport(m.form.Destination, step))
			}
		}

	case fieldDepart, fieldReturn:
		if key.Matches(msg, m.keys.Confirm) {
			field := booking.FieldDeparture
			if m.focus == fieldReturn {
				field = booking.FieldReturn
			}
			m.ctrl.OpenPicker(field)
			m.modal = newPickerModal(m.ctrl, m.clock())
		}

	case fieldPassengers:
		return m.handlePassengerKey(msg)

	case fieldSearch:
		if key.Matches(msg, m.keys.Confirm) {
			m.runSearch()
		}
	}

	return m, nil
}

// handlePassengerKey steps the count or edits it as text. Typed values are
// coerced and written back so the input always shows the stored count.
func (m Model) handlePassengerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Increment), key.Matches(msg, m.keys.Right):
		m.form.IncrementPassengers()
	case key.Matches(msg, m.keys.Decrement), key.Matches(msg, m.keys.Left):
		m.form.DecrementPassengers()
	case msg.Type == tea.KeyBackspace || isDigits(msg):
		var cmd tea.Cmd
		m.passengers, cmd = m.passengers.Update(msg)
		m.form.SetPassengers(m.passengers.Value())
		m.syncPassengers()
		return m, cmd
	default:
		return m, nil
	}
	m.syncPassengers()
	return m, nil
}

func (m *Model) syncPassengers() {
	m.passengers.SetValue(strconv.Itoa(m.form.Passengers))
	m.passengers.CursorEnd()
}

func isDigits(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// moveFocus steps through the visible fields, wrapping at either end.
func (m *Model) moveFocus(delta int) tea.Cmd {
	fields := visibleFields(m.form.TripType)
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.focus = fields[idx]

	if m.focus == fieldPassengers {
		return m.passengers.Focus()
	}
	m.passengers.Blur()
	return nil
}

// currentFocus returns the focused field, falling back to the trip selector
// when the focused field has been hidden.
func (m Model) currentFocus() formField {
	for _, f := range visibleFields(m.form.TripType) {
		if f == m.focus {
			return f
		}
	}
	return fieldTrip
}

// renderForm draws the search card.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	focus := m.currentFocus()
	width := m.fieldWidth()

	rows := []string{m.renderTripChips(focus == fieldTrip)}

	from := m.renderField("From", airportValue(m.form.Origin), "Select airport", focus == fieldFrom, width)
	to := m.renderField("To", airportValue(m.form.Destination), "Select airport", focus == fieldTo, width)
	rows = append(rows, m.pair(from, to))

	depart := m.renderField("Departure", dateValue(m.form.Departure), "Select date", focus == fieldDepart, width)
	if m.form.TripType.NeedsReturn() {
		ret := m.renderField("Return", dateValue(m.form.Return), "Select date", focus == fieldReturn, width)
		rows = append(rows, m.pair(depart, ret))
	} else {
		rows = append(rows, depart)
	}

	passengers := strconv.Itoa(m.form.Passengers)
	if focus == fieldPassengers {
		passengers = m.passengers.View() + "  " + styles.FaintText.Render("+/- or type")
	}
	rows = append(rows, m.renderField("Passengers", passengers, "", focus == fieldPassengers, width))

	button := styles.Button.Render("Search Flights")
	if focus == fieldSearch {
		button = styles.ButtonFocused.Render("Search Flights")
	}
	rows = append(rows, button)

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.Card.Render(body))
}

func (m Model) renderTripChips(focused bool) string {
	styles := m.theme.Styles()
	chips := make([]string, 0, len(booking.TripTypes))
	for _, t := range booking.TripTypes {
		if t == m.form.TripType {
			chips = append(chips, styles.ChipActive.Render(t.Label()))
			continue
		}
		chips = append(chips, styles.Chip.Render(t.Label()))
	}
	label := styles.Label.Render("Trip")
	if focused {
		label = styles.AccentText.Bold(true).Render("Trip ›")
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, strings.Join(chips, " "), "")
}

func (m Model) renderField(label, value, placeholder string, focused bool, width int) string {
	styles := m.theme.Styles()
	box := styles.Field.Width(width)
	if focused {
		box = styles.FieldFocused.Width(width)
	}
	content := value
	if content == "" {
		content = styles.FaintText.Render(placeholder)
	}
	return lipgloss.JoinVertical(lipgloss.Left, styles.Label.Render(label), box.Render(content))
}

// pair places two fields side by side on wide terminals.
func (m Model) pair(left, right string) string {
	if m.width < LayoutCompactWidth {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m Model) fieldWidth() int {
	if m.width < LayoutCompactWidth {
		return clampInt(m.width-8, FieldMinWidth, FieldMaxWidth)
	}
	return clampInt((m.width-12)/2, FieldMinWidth, FieldMaxWidth)
}

func airportValue(a booking.Airport) string {
	return string(a)
}

func dateValue(d *booking.ISODate) string {
	if d == nil {
		return ""
	}
	return d.String()
}
