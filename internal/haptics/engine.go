package haptics

import (
	"github.com/Iron-Ham/breathe/internal/breath"
	"github.com/Iron-Ham/breathe/internal/errors"
	"github.com/Iron-Ham/breathe/internal/event"
	"github.com/Iron-Ham/breathe/internal/logging"
)

// Engine plays exactly one pulse per phase transition. It subscribes to
// phase.changed events on the bus. Pulse failures are logged at WARN and
// the transition is otherwise skipped; there is no retry.
type Engine struct {
	bus    *event.Bus
	pulser Pulser
	log    *logging.Logger
	subID  string
}

// NewEngine creates an Engine and subscribes it to phase transitions on bus.
func NewEngine(bus *event.Bus, pulser Pulser, log *logging.Logger) *Engine {
	e := &Engine{
		bus:    bus,
		pulser: pulser,
		log:    log.WithComponent("haptics"),
	}
	e.subID = bus.Subscribe(breath.EventPhaseChanged, e.handle)
	return e
}

func (e *Engine) handle(ev event.Event) {
	pc, ok := ev.(breath.PhaseChangedEvent)
	if !ok {
		return
	}

	if err := e.pulser.Pulse(DefaultTransient()); err != nil {
		e.log.Warn("tactile pulse skipped",
			"phase", pc.Phase.String(),
			"transient", errors.IsTransient(err),
			"error", err.Error())
	}
}

// Close unsubscribes the engine from the bus. No pulses play afterwards.
func (e *Engine) Close() {
	if e.subID != "" {
		e.bus.Unsubscribe(e.subID)
		e.subID = ""
	}
}
