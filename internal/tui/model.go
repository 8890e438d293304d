package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"

	"github.com/Iron-Ham/breathe/internal/breath"
	"github.com/Iron-Ham/breathe/internal/config"
	"github.com/Iron-Ham/breathe/internal/logging"
)

// Model holds the TUI application state
type Model struct {
	// Core components
	session *breath.Session
	cfg     *config.Config
	log     *logging.Logger

	// UI state
	width    int
	height   int
	ready    bool
	quitting bool
	keys     keyMap
	help     help.Model

	// Session mirror, fed by bus events forwarded through the program
	active  bool
	elapsed int
	phase   breath.Phase

	// Orb animation state. The core emits discrete scale targets; the view
	// owns interpolation. The eased transition lasts one inhale duration.
	anim animState

	// Transient one-line notice (e.g. after switching themes)
	notice string
}

// animState tracks the eased interpolation toward the latest scale target.
type animState struct {
	from     float64   // scale when the current transition began
	target   float64   // 0 (min) or 1 (max)
	start    time.Time // when the current transition began
	duration time.Duration
	now      time.Time // last render tick
}

// NewModel creates a new TUI model
func NewModel(session *breath.Session, cfg *config.Config, log *logging.Logger) Model {
	helpModel := help.New()

	return Model{
		session: session,
		cfg:     cfg,
		log:     log.WithComponent("tui"),
		keys:    defaultKeyMap(),
		help:    helpModel,
		phase:   breath.PhaseInhale,
		anim: animState{
			duration: session.Durations().Inhale,
		},
	}
}

// retarget begins a new eased transition from the current scale.
func (m *Model) retarget(target breath.ScaleTarget, at time.Time) {
	m.anim.from = m.anim.scaleAt(at)
	m.anim.start = at
	if target == breath.ScaleMax {
		m.anim.target = 1
	} else {
		m.anim.target = 0
	}
}

// tickInterval returns the render cadence from config.
func (m Model) tickInterval() time.Duration {
	return m.cfg.TUI.TickInterval()
}
