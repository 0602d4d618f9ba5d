package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/five82/skyexplorer/internal/booking"
	"github.com/five82/skyexplorer/internal/logging"
	"github.com/five82/skyexplorer/internal/prefs"
	"github.com/five82/skyexplorer/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Logger    logrus.FieldLogger
	ThemeName string
	Prefs     prefs.Prefs
	PrefsPath string
	SessionID string
	Clock     func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	log       logrus.FieldLogger
	logSink   booking.NotificationSink
	prefs     prefs.Prefs
	prefsPath string
	sessionID string
	clock     func() time.Time

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Form state. The controller writes through the same pointer.
	form       *booking.FormState
	ctrl       *booking.Controller
	focus      formField
	passengers textinput.Model

	// Overlay
	modal Modal

	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = opts.Prefs.Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	var log logrus.FieldLogger
	var logSink booking.NotificationSink
	if opts.Logger != nil {
		log = opts.Logger.WithField("session", sessionID)
		logSink = logging.Sink(log)
	} else {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	form := booking.NewFormState()
	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		log:        log,
		logSink:    logSink,
		prefs:      opts.Prefs,
		prefsPath:  prefsPath,
		sessionID:  sessionID,
		clock:      clock,
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		form:       &form,
		focus:      fieldTrip,
		passengers: newPassengerInput(form.Passengers),
	}
	m.ctrl = booking.NewController(m.form, clock)
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey routes a key to the open modal or the form.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.modal = newHelpModal(m.keys)
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleDestinations):
		m.prefs.HideDestinations = !m.prefs.HideDestinations
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.runSearch()
		return m, nil
	}

	return m.handleFormKey(msg)
}

// runSearch validates the form and raises the outcome as a notice.
func (m *Model) runSearch() {
	capture := &noticeSink{}
	sinks := booking.MultiSink{capture}
	if m.store != nil {
		sinks = append(sinks, m.store)
	}
	if m.logSink != nil {
		sinks = append(sinks, m.logSink)
	}

	if _, err := booking.Search(*m.form, sinks); err != nil {
		m.log.WithError(err).Debug("search rejected")
	}
	if capture.last != nil {
		m.modal = newNoticeModal(*capture.last)
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.WithError(err).Warn("save preferences")
	}
}

// renderMain renders the header, form, destinations and footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())
	if !m.prefs.HideDestinations {
		b.WriteString("\n\n")
		b.WriteString(m.renderDestinations())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Run starts the Bubble Tea program. It returns nil when the context is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
