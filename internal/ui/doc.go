// Package ui provides the terminal flight search form for SkyExplorer.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns one booking.FormState and a
// booking.Controller that writes picked dates into it. Dialogs (date picker,
// search notice, help) implement Modal and receive every key while open.
//
// # Package Structure
//
//   - app.go: Model, Options, key routing, search and the Run function
//   - form.go: field focus, per-field key handling and form rendering
//   - picker.go: the month grid dialog with a day cursor
//   - notice.go: the search outcome dialog and the sink that captures it
//   - help.go: the key binding overlay built on bubbles/help
//   - header.go: status bar and footer
//   - destinations.go: promotional destination cards
//   - theme.go, keys.go, layout.go: palettes, bindings and sizing
//
// # Event Flow
//
//  1. Run builds the Model and starts the program on the alternate screen
//  2. Keys move focus, cycle options or open the date picker
//  3. Search validates the form and fans the notice out to the dialog,
//     the state.Store and the log
//  4. Cancelling the context ends the program cleanly
//
// # Key Bindings
//
//   - Tab/Shift+Tab or j/k: move between fields
//   - ←/→ or h/l: cycle trip type and airports, step passengers
//   - Enter: open the date picker, select a day, or search
//   - +/-: add or remove a passenger
//   - Ctrl+S: search from anywhere
//   - T: cycle theme, D: toggle destinations, ?: help
//   - Ctrl+C or Ctrl+Q: quit
package ui
