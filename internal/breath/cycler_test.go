package breath

import (
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/breathe/internal/testutil"
)

// shortDurations returns a fast cycle for timer tests.
func shortDurations(per time.Duration) Durations {
	return Durations{Inhale: per, HoldInhale: per, Exhale: per, HoldExhale: per}
}

// newTestCycler returns a cycler recording every transition.
func newTestCycler(per time.Duration) (*Cycler, func() []Transition) {
	var mu sync.Mutex
	var transitions []Transition

	c := NewCycler(shortDurations(per), func(tr Transition) {
		mu.Lock()
		transitions = append(transitions, tr)
		mu.Unlock()
	})

	return c, func() []Transition {
		mu.Lock()
		defer mu.Unlock()
		out := make([]Transition, len(transitions))
		copy(out, transitions)
		return out
	}
}

func TestCycler_StartEmitsInhaleImmediately(t *testing.T) {
	c, transitions := newTestCycler(time.Hour)
	c.Start()
	defer c.Stop()

	got := transitions()
	if len(got) != 1 {
		t.Fatalf("Start should emit exactly one transition, got %d", len(got))
	}
	if got[0].Phase != PhaseInhale || got[0].Scale != ScaleMax {
		t.Errorf("First transition = {%s %s}, want {inhale max}", got[0].Phase, got[0].Scale)
	}
}

func TestCycler_AdvancesInCycleOrder(t *testing.T) {
	c, transitions := newTestCycler(15 * time.Millisecond)
	c.Start()
	defer c.Stop()

	testutil.Eventually(t, 2*time.Second, time.Millisecond, func() bool {
		return len(transitions()) >= 6
	}, "cycler should advance through at least six transitions")

	want := []Transition{
		{PhaseInhale, ScaleMax},
		{PhaseHoldInhale, ScaleMax},
		{PhaseExhale, ScaleMin},
		{PhaseHoldExhale, ScaleMin},
		{PhaseInhale, ScaleMax},
		{PhaseHoldInhale, ScaleMax},
	}

	got := transitions()[:6]
	for i, tr := range got {
		if tr != want[i] {
			t.Errorf("transition %d = {%s %s}, want {%s %s}",
				i, tr.Phase, tr.Scale, want[i].Phase, want[i].Scale)
		}
	}
}

func TestCycler_OneNotificationPerPhaseEntry(t *testing.T) {
	c, transitions := newTestCycler(15 * time.Millisecond)
	c.Start()

	// Wait just past one full cycle: the starting transition plus four
	// advances lands back on inhale.
	testutil.Eventually(t, 2*time.Second, time.Millisecond, func() bool {
		return len(transitions()) >= 5
	}, "one full cycle should produce five transitions including the start")

	c.Stop()

	got := transitions()
	if got[4].Phase != PhaseInhale {
		t.Errorf("Fifth transition should re-enter inhale, got %s", got[4].Phase)
	}
}

func TestCycler_StopResetsAndSilences(t *testing.T) {
	c, transitions := newTestCycler(15 * time.Millisecond)
	c.Start()

	testutil.Eventually(t, 2*time.Second, time.Millisecond, func() bool {
		return len(transitions()) >= 2
	}, "cycler should advance at least once")

	c.Stop()

	if c.Phase() != PhaseInhale {
		t.Errorf("Stop should reset phase to inhale, got %s", c.Phase())
	}
	if c.Scale() != ScaleMin {
		t.Errorf("Stop should reset scale to min, got %s", c.Scale())
	}
	if c.Running() {
		t.Error("Stop should leave the cycler not running")
	}

	before := len(transitions())
	time.Sleep(60 * time.Millisecond)
	if after := len(transitions()); after != before {
		t.Errorf("No transitions may fire after Stop: %d before, %d after", before, after)
	}
}

func TestCycler_StopIdempotent(t *testing.T) {
	c, _ := newTestCycler(15 * time.Millisecond)
	c.Start()
	c.Stop()
	c.Stop()

	if c.Phase() != PhaseInhale || c.Scale() != ScaleMin || c.Running() {
		t.Error("Double Stop should leave the cycler at idle defaults")
	}
}

func TestCycler_StopBeforeStart(t *testing.T) {
	c, transitions := newTestCycler(15 * time.Millisecond)
	c.Stop()

	if len(transitions()) != 0 {
		t.Error("Stop on a never-started cycler should not emit transitions")
	}
	if c.Phase() != PhaseInhale || c.Scale() != ScaleMin {
		t.Error("Never-started cycler should sit at idle defaults")
	}
}

func TestCycler_RestartBeginsAtInhale(t *testing.T) {
	c, transitions := newTestCycler(15 * time.Millisecond)
	c.Start()

	testutil.Eventually(t, 2*time.Second, time.Millisecond, func() bool {
		return len(transitions()) >= 3
	}, "cycler should reach exhale")

	c.Start()
	defer c.Stop()

	got := transitions()
	last := got[len(got)-1]
	if last.Phase != PhaseInhale || last.Scale != ScaleMax {
		t.Errorf("Restart should re-enter inhale at max, got {%s %s}", last.Phase, last.Scale)
	}
}
