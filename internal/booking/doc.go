// Package booking holds the flight search form and the logic behind it.
//
// # Overview
//
// The form is a plain FormState value owned by a single UI session. Nothing
// here blocks, spawns goroutines or touches the network; every operation runs
// to completion on the event that triggered it.
//
// # Components
//
//   - types.go: TripType, DateField and ISODate
//   - catalog.go: the fixed airport list and the promotional destinations
//   - state.go: FormState, its mutation events and passenger coercion
//   - picker.go: Controller, which opens and closes the date picker and
//     writes the chosen day into the departure or return field
//   - validate.go: Validate and Query, the required-field check before a search
//   - notify.go: NotificationSink and Search, which reports the outcome
//
// # Date Picker Flow
//
//	OpenPicker(FieldDeparture)
//	       │  ActiveField = departure, grid = calendar.Generate(now)
//	       ▼
//	SelectDay(15)
//	       │  Departure = NewISODate(year, monthIndex, 15)
//	       ▼
//	ClosePicker()
//	          ActiveField = none, grid dropped
//
// Padding cells in the grid never produce a date; selecting one leaves the
// picker open.
//
// # Validation
//
// A search needs an origin, a destination and a departure date, plus a return
// date for round trips. Failures wrap ErrMissingRequiredField. The validator
// deliberately performs no cross-field checks: a return before the departure
// or an identical origin and destination both pass.
package booking
