// Package haptics provides the tactile-feedback collaborator: a short pulse
// played once per phase transition. Pulse failures are never fatal; the
// engine logs them and the session continues without feedback for that
// transition.
package haptics

import (
	"io"
	"os"

	"github.com/Iron-Ham/breathe/internal/errors"
)

// Transient describes a single short pulse on a 0-1 scale.
type Transient struct {
	Intensity float64
	Sharpness float64
}

// DefaultTransient returns the fixed pulse played on phase transitions.
func DefaultTransient() Transient {
	return Transient{Intensity: 0.5, Sharpness: 0.5}
}

// Pulser plays tactile transients. Implementations must be safe for
// concurrent use.
type Pulser interface {
	// Pulse plays a single transient. Errors are transient failures; the
	// caller skips the pulse and continues.
	Pulse(t Transient) error
}

// BellPulser delivers pulses as terminal bell characters, the terminal's
// only transient feedback channel. Intensity and sharpness are accepted for
// interface compatibility but the bell has no amplitude control.
type BellPulser struct {
	w io.Writer
}

// NewBellPulser creates a BellPulser writing to w. If w is nil, the pulser
// writes to stdout. The bell works even under an alt-screen TUI because it
// bypasses the renderer and goes straight to the terminal.
func NewBellPulser(w io.Writer) *BellPulser {
	if w == nil {
		w = os.Stdout
	}
	return &BellPulser{w: w}
}

// Pulse writes a single BEL byte.
func (p *BellPulser) Pulse(t Transient) error {
	if _, err := p.w.Write([]byte{'\a'}); err != nil {
		return errors.NewHapticsError("bell write failed", err)
	}
	return nil
}

// NoopPulser discards all pulses. Used when haptics are disabled.
type NoopPulser struct{}

// Pulse does nothing and always succeeds.
func (NoopPulser) Pulse(t Transient) error { return nil }

// New returns the pulser for the given configuration: a BellPulser on the
// terminal when enabled, a NoopPulser otherwise.
func New(enabled bool) Pulser {
	if !enabled {
		return NoopPulser{}
	}
	return NewBellPulser(nil)
}
