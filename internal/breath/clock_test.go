package breath

import (
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/breathe/internal/testutil"
)

// newTestClock returns a clock ticking every interval instead of every
// second, recording each callback value.
func newTestClock(interval time.Duration) (*Clock, func() []int) {
	var mu sync.Mutex
	var ticks []int

	c := NewClock(func(elapsed int) {
		mu.Lock()
		ticks = append(ticks, elapsed)
		mu.Unlock()
	})
	c.interval = interval

	return c, func() []int {
		mu.Lock()
		defer mu.Unlock()
		out := make([]int, len(ticks))
		copy(out, ticks)
		return out
	}
}

func TestClock_CountsMonotonically(t *testing.T) {
	c, ticks := newTestClock(10 * time.Millisecond)
	c.Start()
	defer c.Stop()

	testutil.Eventually(t, time.Second, time.Millisecond, func() bool {
		return len(ticks()) >= 3
	}, "clock should tick at least 3 times")

	got := ticks()
	for i := 0; i < 3; i++ {
		if got[i] != i+1 {
			t.Errorf("tick %d reported elapsed %d, want %d", i, got[i], i+1)
		}
	}
}

func TestClock_StartResetsElapsed(t *testing.T) {
	c, ticks := newTestClock(10 * time.Millisecond)
	c.Start()

	testutil.Eventually(t, time.Second, time.Millisecond, func() bool {
		return c.Elapsed() >= 2
	}, "clock should reach 2")

	c.Start()
	if c.Elapsed() != 0 {
		t.Errorf("Start should reset elapsed to 0, got %d", c.Elapsed())
	}
	c.Stop()
	_ = ticks
}

func TestClock_StopResetsAndSilences(t *testing.T) {
	c, ticks := newTestClock(10 * time.Millisecond)
	c.Start()

	testutil.Eventually(t, time.Second, time.Millisecond, func() bool {
		return len(ticks()) >= 1
	}, "clock should tick at least once")

	c.Stop()

	if c.Elapsed() != 0 {
		t.Errorf("Stop should reset elapsed to 0, got %d", c.Elapsed())
	}
	if c.Running() {
		t.Error("Stop should leave the clock not running")
	}

	before := len(ticks())
	time.Sleep(50 * time.Millisecond)
	if after := len(ticks()); after != before {
		t.Errorf("No ticks may fire after Stop: %d before, %d after", before, after)
	}
}

func TestClock_StopIdempotent(t *testing.T) {
	c, _ := newTestClock(10 * time.Millisecond)
	c.Start()
	c.Stop()
	c.Stop()

	if c.Elapsed() != 0 || c.Running() {
		t.Error("Double Stop should leave the clock idle with elapsed 0")
	}
}

func TestClock_StopBeforeStart(t *testing.T) {
	c, _ := newTestClock(10 * time.Millisecond)
	c.Stop()

	if c.Elapsed() != 0 || c.Running() {
		t.Error("Stop on a never-started clock should be a no-op")
	}
}
