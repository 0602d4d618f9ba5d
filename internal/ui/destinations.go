package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyexplorer/internal/booking"
)

// renderDestinations draws the promotional cards, wrapping to as many rows
// as the terminal width needs.
func (m Model) renderDestinations() string {
	styles := m.theme.Styles()

	cards := make([]string, 0, len(booking.Destinations))
	for _, d := range booking.Destinations {
		body := lipgloss.JoinVertical(lipgloss.Left,
			styles.Text.Bold(true).Render(d.Emoji+" "+d.Name),
			styles.MutedText.Render(d.Country),
			styles.AccentText.Render("from "+d.PriceLabel()),
		)
		cards = append(cards, styles.Card.Width(CardWidth-2).Render(body))
	}

	perRow := len(cards)
	if m.width < LayoutWideWidth {
		perRow = clampInt(m.width/(CardWidth+1), 1, len(cards))
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}

	title := styles.Label.Render("Popular destinations")
	block := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}
