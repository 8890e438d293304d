package tui

import (
	"math"
	"time"
)

// easeInOutQuad is the standard quadratic ease-in-out curve on [0,1].
func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// scaleAt returns the interpolated scale in [0,1] at the given instant.
// Before the transition starts it returns the origin; past the transition's
// duration it clamps to the target.
func (a animState) scaleAt(now time.Time) float64 {
	if a.duration <= 0 {
		return a.target
	}
	if a.start.IsZero() {
		return a.from
	}

	t := now.Sub(a.start).Seconds() / a.duration.Seconds()
	if t <= 0 {
		return a.from
	}
	if t >= 1 {
		return a.target
	}
	return a.from + (a.target-a.from)*easeInOutQuad(t)
}
