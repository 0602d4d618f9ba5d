package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpModal lists every binding. Any key closes it.
type helpModal struct {
	keys keyMap
}

func newHelpModal(keys keyMap) helpModal {
	return helpModal{keys: keys}
}

func (m helpModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, nil, true
	}
	return m, nil, false
}

func (m helpModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	h := help.New()
	h.ShowAll = true
	h.Styles = helpStyles(theme)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(h.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	return placeModal(theme, width, height, b.String())
}

// helpStyles colors the bubbles help view with the theme palette.
func helpStyles(theme Theme) help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
	return help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}
