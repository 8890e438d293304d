package tui

import (
	"math"
	"testing"
	"time"

	"github.com/Iron-Ham/breathe/internal/breath"
)

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		if got := easeInOutQuad(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("easeInOutQuad(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Monotonic over [0,1]
	prev := easeInOutQuad(0)
	for i := 1; i <= 100; i++ {
		cur := easeInOutQuad(float64(i) / 100)
		if cur < prev {
			t.Fatalf("easing not monotonic at t=%v", float64(i)/100)
		}
		prev = cur
	}
}

func TestScaleAt_ClampsOutsideTransition(t *testing.T) {
	start := time.Now()
	a := animState{from: 0, target: 1, start: start, duration: 4 * time.Second}

	if got := a.scaleAt(start); got != 0 {
		t.Errorf("scale at transition start = %v, want 0", got)
	}
	if got := a.scaleAt(start.Add(10 * time.Second)); got != 1 {
		t.Errorf("scale past transition end = %v, want 1", got)
	}
}

func TestScaleAt_MidTransitionIsBetweenEndpoints(t *testing.T) {
	start := time.Now()
	a := animState{from: 0, target: 1, start: start, duration: 4 * time.Second}

	mid := a.scaleAt(start.Add(2 * time.Second))
	if mid <= 0 || mid >= 1 {
		t.Errorf("mid-transition scale = %v, want strictly between 0 and 1", mid)
	}
}

func TestScaleAt_ZeroDurationJumpsToTarget(t *testing.T) {
	a := animState{from: 0, target: 1, start: time.Now(), duration: 0}
	if got := a.scaleAt(time.Now()); got != 1 {
		t.Errorf("zero-duration scale = %v, want 1", got)
	}
}

func TestScaleAt_BeforeFirstTransition(t *testing.T) {
	a := animState{from: 0.25, duration: 4 * time.Second}
	if got := a.scaleAt(time.Now()); got != 0.25 {
		t.Errorf("scale before any transition = %v, want origin 0.25", got)
	}
}

func TestRetarget_StartsFromCurrentScale(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	// Expand, then reverse halfway through
	m.retarget(breath.ScaleMax, start)
	halfway := start.Add(m.anim.duration / 2)
	before := m.anim.scaleAt(halfway)
	m.retarget(breath.ScaleMin, halfway)

	if m.anim.from != before {
		t.Errorf("reversal should start from the interpolated scale %v, got %v", before, m.anim.from)
	}
	if m.anim.target != 0 {
		t.Errorf("target = %v, want 0", m.anim.target)
	}
}
