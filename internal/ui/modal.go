package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a dialog drawn over the form. While one is open it receives every
// key. Update returns the updated modal, a command, and whether it should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// placeModal frames content and centers it on the screen.
func placeModal(theme Theme, width, height int, content string) string {
	framed := theme.Styles().Modal.Render(content)
	if width <= 0 || height <= 0 {
		return framed
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		framed,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
