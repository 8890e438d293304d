package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/breathe/internal/breath"
	"github.com/Iron-Ham/breathe/internal/config"
	"github.com/Iron-Ham/breathe/internal/event"
	"github.com/Iron-Ham/breathe/internal/logging"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	session *breath.Session
	bus     *event.Bus
	log     *logging.Logger
}

// New creates a new TUI application
func New(session *breath.Session, bus *event.Bus, cfg *config.Config, log *logging.Logger) *App {
	return &App{
		model:   NewModel(session, cfg, log),
		session: session,
		bus:     bus,
		log:     log.WithComponent("app"),
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward session events into the program's update loop. Send is safe
	// from handler goroutines and becomes a no-op once the program exits.
	subID := a.bus.SubscribeAll(func(e event.Event) {
		if msg := translateEvent(e); msg != nil {
			a.program.Send(msg)
		}
	})

	// Graceful shutdown on termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	a.log.Info("ui started")
	_, err := a.program.Run()
	a.log.Info("ui exited")

	signal.Stop(sigChan)
	a.bus.Unsubscribe(subID)

	// Stop any running session so its timers do not outlive the UI
	_ = a.session.Stop()

	return err
}

// translateEvent maps bus events onto program messages. Events the view does
// not render return nil and are dropped.
func translateEvent(e event.Event) tea.Msg {
	switch ev := e.(type) {
	case breath.SessionStartedEvent:
		return sessionStartedMsg{durations: ev.Durations}
	case breath.SessionStoppedEvent:
		return sessionStoppedMsg{elapsed: ev.Elapsed}
	case breath.PhaseChangedEvent:
		return phaseChangedMsg{phase: ev.Phase, scale: ev.Scale}
	case breath.ClockTickEvent:
		return clockTickMsg{elapsed: ev.Elapsed}
	default:
		return nil
	}
}
