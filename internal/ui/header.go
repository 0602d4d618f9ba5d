package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyexplorer/internal/booking"
)

const appName = "skyexplorer"

// renderHeader renders the status bar: logo, session, search counters and
// the most recent notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bar := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface))
	on := func(s lipgloss.Style) lipgloss.Style {
		return s.Background(lipgloss.Color(m.theme.Surface))
	}
	sep := bar.Render("  ")

	parts := []string{
		on(styles.Logo).Render("✈ " + appName),
		on(styles.MutedText).Render("session " + shortID(m.sessionID)),
		on(styles.MutedText).Render(fmt.Sprintf("searches %d", m.snapshot.Searches)),
	}
	if m.snapshot.Rejected > 0 {
		parts = append(parts, on(styles.WarningText).Render(fmt.Sprintf("rejected %d", m.snapshot.Rejected)))
	}
	if last, ok := m.snapshot.Last(); ok {
		style := on(styles.FaintText)
		if last.Level == booking.LevelError {
			style = on(styles.DangerText)
		}
		limit := m.width / 3
		parts = append(parts, style.Render(truncate(last.Title+": "+firstLine(last.Body), limit)))
	}
	parts = append(parts, on(styles.FaintText).Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	h := m.help
	h.Styles = helpStyles(m.theme)
	return lipgloss.NewStyle().Padding(0, 1).Render(h.ShortHelpView(m.keys.ShortHelp()))
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return truncate(id, 8)
}
