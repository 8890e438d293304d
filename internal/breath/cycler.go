package breath

import (
	"sync"
	"time"
)

// Transition is the payload emitted on every phase entry: the phase just
// entered and the scale target the presentation should animate toward.
type Transition struct {
	Phase Phase
	Scale ScaleTarget
}

// Cycler advances through the fixed four-phase cycle, holding each phase
// for its configured duration and emitting exactly one transition per
// phase entry.
//
// There is exactly one pending timer at any time: Start schedules once and
// each fire reschedules once. It is safe for concurrent use.
type Cycler struct {
	mu           sync.Mutex
	durations    Durations
	onTransition func(Transition)
	phase        Phase
	scale        ScaleTarget
	running      bool
	timer        *time.Timer
}

// NewCycler creates a Cycler with the given per-phase durations.
// onTransition runs on the timer goroutine with the cycler's lock held and
// must not call back into the Cycler. A nil onTransition is allowed.
func NewCycler(durations Durations, onTransition func(Transition)) *Cycler {
	return &Cycler{
		durations:    durations,
		onTransition: onTransition,
		phase:        PhaseInhale,
		scale:        ScaleMin,
	}
}

// Start enters the inhale phase, emits the first transition immediately,
// and schedules the timer that will advance to the next phase. Calling
// Start on a running cycler restarts the cycle from inhale.
func (c *Cycler) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.running = true
	c.phase = PhaseInhale
	c.scale = ScaleMax
	c.emitLocked()
	c.timer = time.AfterFunc(c.durations.For(c.phase), c.advance)
}

// advance fires when the current phase's duration elapses.
func (c *Cycler) advance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A timer that lost the race with Stop must not mutate state.
	if !c.running {
		return
	}

	c.phase = c.phase.Next()
	c.scale = scaleOnEnter(c.phase, c.scale)
	c.emitLocked()
	c.timer = time.AfterFunc(c.durations.For(c.phase), c.advance)
}

// Stop cancels the pending timer and resets to the idle pose
// (inhale, minimum scale). It is idempotent, and no transition fires
// after Stop returns.
func (c *Cycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.phase = PhaseInhale
	c.scale = ScaleMin
}

// cancelLocked stops the pending timer. The caller must hold the mutex.
func (c *Cycler) cancelLocked() {
	c.running = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// emitLocked notifies the observer of the current phase and scale target.
// The caller must hold the mutex.
func (c *Cycler) emitLocked() {
	if c.onTransition != nil {
		c.onTransition(Transition{Phase: c.phase, Scale: c.scale})
	}
}

// Phase returns the current breathing phase.
func (c *Cycler) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Scale returns the current scale target.
func (c *Cycler) Scale() ScaleTarget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale
}

// Running reports whether the cycler is currently advancing.
func (c *Cycler) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
