package breath

import "time"

// Phase represents one of the four box-breathing phases.
// The order is fixed and cyclic: Inhale → HoldInhale → Exhale → HoldExhale.
type Phase int

const (
	// PhaseInhale is the expansion phase; the orb grows toward full size.
	PhaseInhale Phase = iota
	// PhaseHoldInhale holds the lungs full; the orb keeps its size.
	PhaseHoldInhale
	// PhaseExhale is the contraction phase; the orb shrinks toward rest size.
	PhaseExhale
	// PhaseHoldExhale holds the lungs empty; the orb keeps its size.
	PhaseHoldExhale
)

// Phases lists all phases in cycle order.
var Phases = []Phase{PhaseInhale, PhaseHoldInhale, PhaseExhale, PhaseHoldExhale}

// Next returns the phase that follows p in the cycle.
func (p Phase) Next() Phase {
	switch p {
	case PhaseInhale:
		return PhaseHoldInhale
	case PhaseHoldInhale:
		return PhaseExhale
	case PhaseExhale:
		return PhaseHoldExhale
	default:
		return PhaseInhale
	}
}

// String returns the identifier used in logs and events.
func (p Phase) String() string {
	switch p {
	case PhaseInhale:
		return "inhale"
	case PhaseHoldInhale:
		return "hold_inhale"
	case PhaseExhale:
		return "exhale"
	case PhaseHoldExhale:
		return "hold_exhale"
	default:
		return "unknown"
	}
}

// Label returns the user-facing instruction for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseInhale:
		return "Breathe In"
	case PhaseHoldInhale:
		return "Hold"
	case PhaseExhale:
		return "Breathe Out"
	case PhaseHoldExhale:
		return "Hold"
	default:
		return ""
	}
}

// ScaleTarget is the discrete size the presentation layer animates toward.
// The core emits targets only; interpolation and easing belong to the view.
type ScaleTarget int

const (
	// ScaleMin is the rest size (idle, exhaled).
	ScaleMin ScaleTarget = iota
	// ScaleMax is the full size (inhaled).
	ScaleMax
)

// String returns the identifier used in logs and events.
func (s ScaleTarget) String() string {
	if s == ScaleMax {
		return "max"
	}
	return "min"
}

// scaleOnEnter returns the scale target after entering phase p.
// Inhale expands, exhale contracts, the holds keep the previous target.
func scaleOnEnter(p Phase, prev ScaleTarget) ScaleTarget {
	switch p {
	case PhaseInhale:
		return ScaleMax
	case PhaseExhale:
		return ScaleMin
	default:
		return prev
	}
}

// Durations holds the length of each breathing phase.
type Durations struct {
	Inhale     time.Duration
	HoldInhale time.Duration
	Exhale     time.Duration
	HoldExhale time.Duration
}

// DefaultDurations returns the standard box-breathing timing: 4 seconds per
// phase, a 16 second full cycle.
func DefaultDurations() Durations {
	return Durations{
		Inhale:     4 * time.Second,
		HoldInhale: 4 * time.Second,
		Exhale:     4 * time.Second,
		HoldExhale: 4 * time.Second,
	}
}

// For returns the duration of the given phase.
func (d Durations) For(p Phase) time.Duration {
	switch p {
	case PhaseInhale:
		return d.Inhale
	case PhaseHoldInhale:
		return d.HoldInhale
	case PhaseExhale:
		return d.Exhale
	default:
		return d.HoldExhale
	}
}

// Cycle returns the length of one full four-phase cycle.
func (d Durations) Cycle() time.Duration {
	return d.Inhale + d.HoldInhale + d.Exhale + d.HoldExhale
}
