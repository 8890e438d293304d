package breath

import (
	"sync"
	"time"
)

// Clock counts elapsed whole seconds while a session is active.
//
// The tick is drift-tolerant: each fire schedules the next one-shot timer,
// so ticks need not be exactly periodic, only monotonically increasing the
// count once per elapsed second. It is safe for concurrent use.
type Clock struct {
	mu       sync.Mutex
	interval time.Duration
	onTick   func(elapsed int)
	elapsed  int
	running  bool
	timer    *time.Timer
}

// NewClock creates a Clock that invokes onTick with the new elapsed count
// after every second of an active session. onTick runs on the timer
// goroutine with the clock's lock held and must not call back into the
// Clock. A nil onTick is allowed.
func NewClock(onTick func(elapsed int)) *Clock {
	return &Clock{
		interval: time.Second,
		onTick:   onTick,
	}
}

// Start resets the elapsed count to zero and begins ticking. Calling Start
// on a running clock restarts it.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.elapsed = 0
	c.running = true
	c.timer = time.AfterFunc(c.interval, c.tick)
}

// tick fires once per interval while the clock is running.
func (c *Clock) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A timer that lost the race with Stop must not mutate state.
	if !c.running {
		return
	}

	c.elapsed++
	c.timer = time.AfterFunc(c.interval, c.tick)

	if c.onTick != nil {
		c.onTick(c.elapsed)
	}
}

// Stop cancels the pending tick and resets the elapsed count to zero.
// It is idempotent, and no tick callback fires after Stop returns.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.elapsed = 0
}

// cancelLocked stops the pending timer. The caller must hold the mutex.
func (c *Clock) cancelLocked() {
	c.running = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Elapsed returns the number of whole seconds counted since Start.
func (c *Clock) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Running reports whether the clock is currently ticking.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
