package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit               key.Binding
	Help               key.Binding
	CycleTheme         key.Binding
	ToggleDestinations key.Binding
	Search             key.Binding

	// Form navigation
	Next  key.Binding
	Prev  key.Binding
	Left  key.Binding
	Right key.Binding

	// Field actions
	Confirm   key.Binding
	Increment key.Binding
	Decrement key.Binding

	// Picker
	Up     key.Binding
	Down   key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleDestinations: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Toggle destinations"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Search flights"),
		),

		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/j", "Next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/k", "Previous field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next option"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Open / select"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Add passenger"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Remove passenger"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Previous week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Next week"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "Close"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Right, k.Confirm, k.Search, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Form
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Confirm, k.Increment, k.Decrement, k.Search},
		// Picker
		{k.Up, k.Down, k.Escape},
		// General
		{k.CycleTheme, k.ToggleDestinations, k.Help, k.Quit},
	}
}
