package booking

import (
	"time"

	"github.com/five82/skyexplorer/internal/calendar"
)

// Controller moves dates between the picker grid and the form. The grid is
// rebuilt from the clock each time the picker opens and dropped on close, so
// reopening always shows the current month.
type Controller struct {
	state *FormState
	now   func() time.Time
	grid  calendar.MonthGrid
}

// NewController binds a controller to state. A nil clock uses time.Now.
func NewController(state *FormState, clock func() time.Time) *Controller {
	if clock == nil {
		clock = time.Now
	}
	return &Controller{state: state, now: clock}
}

// State returns the form the controller writes into.
func (c *Controller) State() *FormState {
	return c.state
}

// OpenPicker shows the picker for field. Only departure and return can be
// edited; any other field is ignored.
func (c *Controller) OpenPicker(field DateField) {
	if field != FieldDeparture && field != FieldReturn {
		return
	}
	c.state.ActiveField = field
	c.grid = calendar.Generate(c.now())
}

// ClosePicker hides the picker. Closing an already closed picker changes nothing.
func (c *Controller) ClosePicker() {
	c.state.ActiveField = FieldNone
	c.grid = calendar.MonthGrid{}
}

// PickerOpen reports whether the picker is showing.
func (c *Controller) PickerOpen() bool {
	return c.state.PickerOpen()
}

// Grid returns the month shown by the open picker.
func (c *Controller) Grid() (calendar.MonthGrid, bool) {
	if !c.PickerOpen() {
		return calendar.MonthGrid{}, false
	}
	return c.grid, true
}

// SelectDay writes the chosen day into the active field and closes the
// picker. Padding cells, days outside the grid and clicks while closed are
// ignored and leave the picker as it was.
func (c *Controller) SelectDay(day calendar.Day) bool {
	if !c.PickerOpen() || !c.grid.Contains(day) {
		return false
	}
	date := NewISODate(c.grid.Year, c.grid.MonthIndex(), int(day))
	if c.state.ActiveField == FieldDeparture {
		c.state.Departure = &date
	} else {
		c.state.Return = &date
	}
	c.ClosePicker()
	return true
}
