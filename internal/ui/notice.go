package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/skyexplorer/internal/booking"
)

// noticeModal is the blocking alert raised by a search. Any key dismisses it.
type noticeModal struct {
	notice booking.Notice
}

func newNoticeModal(n booking.Notice) noticeModal {
	return noticeModal{notice: n}
}

func (m noticeModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, nil, true
	}
	return m, nil, false
}

func (m noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	titleStyle := styles.SuccessText
	if m.notice.Level == booking.LevelError {
		titleStyle = styles.DangerText
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.notice.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(m.notice.Body))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("press any key"))
	return placeModal(theme, width, height, b.String())
}

// noticeSink captures the notice handed to it so the model can show it.
type noticeSink struct {
	last *booking.Notice
}

func (s *noticeSink) Notify(n booking.Notice) {
	s.last = &n
}
