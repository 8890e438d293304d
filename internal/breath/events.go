package breath

import "github.com/Iron-Ham/breathe/internal/event"

// Event type identifiers published by the session core.
const (
	EventSessionStarted = "session.started"
	EventSessionStopped = "session.stopped"
	EventPhaseChanged   = "phase.changed"
	EventClockTick      = "clock.tick"
)

// SessionStartedEvent is emitted when a breathing session begins.
type SessionStartedEvent struct {
	event.Base
	Durations Durations
}

// NewSessionStartedEvent creates a SessionStartedEvent.
func NewSessionStartedEvent(durations Durations) SessionStartedEvent {
	return SessionStartedEvent{
		Base:      event.NewBase(EventSessionStarted),
		Durations: durations,
	}
}

// SessionStoppedEvent is emitted when a breathing session ends.
type SessionStoppedEvent struct {
	event.Base
	Elapsed int // Whole seconds the session lasted
}

// NewSessionStoppedEvent creates a SessionStoppedEvent.
func NewSessionStoppedEvent(elapsed int) SessionStoppedEvent {
	return SessionStoppedEvent{
		Base:    event.NewBase(EventSessionStopped),
		Elapsed: elapsed,
	}
}

// PhaseChangedEvent is emitted once per phase entry, including the first
// phase entered on session start. Consumers drive the scale animation and
// trigger exactly one tactile pulse per event.
type PhaseChangedEvent struct {
	event.Base
	Phase Phase
	Scale ScaleTarget
}

// NewPhaseChangedEvent creates a PhaseChangedEvent.
func NewPhaseChangedEvent(phase Phase, scale ScaleTarget) PhaseChangedEvent {
	return PhaseChangedEvent{
		Base:  event.NewBase(EventPhaseChanged),
		Phase: phase,
		Scale: scale,
	}
}

// ClockTickEvent is emitted once per elapsed second of an active session.
type ClockTickEvent struct {
	event.Base
	Elapsed int
}

// NewClockTickEvent creates a ClockTickEvent.
func NewClockTickEvent(elapsed int) ClockTickEvent {
	return ClockTickEvent{
		Base:    event.NewBase(EventClockTick),
		Elapsed: elapsed,
	}
}
