package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/breathe/internal/breath"
	"github.com/Iron-Ham/breathe/internal/tui/styles"
)

// Init starts the render ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.tickInterval())
}

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.anim.now = time.Time(msg)
		return m, tick(m.tickInterval())

	case sessionStartedMsg:
		m.active = true
		m.elapsed = 0
		m.anim.duration = msg.durations.Inhale
		return m, nil

	case sessionStoppedMsg:
		m.active = false
		m.elapsed = 0
		m.phase = breath.PhaseInhale
		m.retarget(breath.ScaleMin, time.Now())
		return m, nil

	case phaseChangedMsg:
		m.phase = msg.phase
		m.retarget(msg.scale, time.Now())
		return m, nil

	case clockTickMsg:
		m.elapsed = msg.elapsed
		return m, nil

	case noticeExpiredMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Toggle):
		// Session mutations publish bus events that are forwarded back into
		// the program via Send, so they must not run on the update loop.
		return m, m.toggleCmd()

	case key.Matches(msg, keys.Theme):
		name := styles.NextTheme()
		m.notice = "theme: " + string(name)
		m.log.Debug("theme switched", "theme", string(name))
		return m, expireNotice()

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m Model) toggleCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		session.Toggle()
		return nil
	}
}
