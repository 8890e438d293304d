package breath

import (
	"sync"

	"github.com/Iron-Ham/breathe/internal/errors"
	"github.com/Iron-Ham/breathe/internal/event"
	"github.com/Iron-Ham/breathe/internal/logging"
)

// State is a point-in-time snapshot of a session.
type State struct {
	Active  bool
	Elapsed int // Whole seconds since start
	Phase   Phase
	Scale   ScaleTarget
}

// IdleState returns the state of a session that is not running.
func IdleState() State {
	return State{
		Active:  false,
		Elapsed: 0,
		Phase:   PhaseInhale,
		Scale:   ScaleMin,
	}
}

// Session owns one Clock and one Cycler and publishes their activity on
// the event bus. Start and Stop are idempotent.
type Session struct {
	mu     sync.Mutex
	active bool

	durations Durations
	bus       *event.Bus
	log       *logging.Logger
	clock     *Clock
	cycler    *Cycler
}

// NewSession creates an idle Session publishing on bus.
func NewSession(durations Durations, bus *event.Bus, log *logging.Logger) *Session {
	s := &Session{
		durations: durations,
		bus:       bus,
		log:       log.WithComponent("session"),
	}
	s.clock = NewClock(func(elapsed int) {
		bus.Publish(NewClockTickEvent(elapsed))
	})
	s.cycler = NewCycler(durations, func(tr Transition) {
		bus.Publish(NewPhaseChangedEvent(tr.Phase, tr.Scale))
	})
	return s
}

// Start begins a new session: both timers reset and the first phase
// transition fires immediately. Starting an active session changes nothing
// and returns ErrSessionActive.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return errors.ErrSessionActive
	}
	s.active = true
	s.mu.Unlock()

	s.log.Info("session started", "cycle", s.durations.Cycle().String())
	s.bus.Publish(NewSessionStartedEvent(s.durations))
	s.cycler.Start()
	s.clock.Start()
	return nil
}

// Stop ends the session and resets all state to idle defaults. No further
// events fire after Stop returns. Stopping an idle session changes nothing
// and returns ErrSessionInactive.
func (s *Session) Stop() error {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return errors.ErrSessionInactive
	}
	s.active = false
	s.mu.Unlock()

	elapsed := s.clock.Elapsed()
	s.clock.Stop()
	s.cycler.Stop()
	s.log.Info("session stopped", "elapsed", elapsed)
	s.bus.Publish(NewSessionStoppedEvent(elapsed))
	return nil
}

// Toggle starts an idle session or stops an active one.
// It returns true if the session is active after the call.
func (s *Session) Toggle() bool {
	if s.Active() {
		_ = s.Stop()
		return false
	}
	_ = s.Start()
	return true
}

// Active reports whether a session is running.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// State returns a snapshot of the current session state.
func (s *Session) State() State {
	if !s.Active() {
		return IdleState()
	}
	return State{
		Active:  true,
		Elapsed: s.clock.Elapsed(),
		Phase:   s.cycler.Phase(),
		Scale:   s.cycler.Scale(),
	}
}

// Durations returns the per-phase durations the session was built with.
func (s *Session) Durations() Durations {
	return s.durations
}
