package haptics

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/Iron-Ham/breathe/internal/breath"
	"github.com/Iron-Ham/breathe/internal/errors"
	"github.com/Iron-Ham/breathe/internal/event"
	"github.com/Iron-Ham/breathe/internal/logging"
)

// recordingPulser counts pulses and optionally fails.
type recordingPulser struct {
	mu     sync.Mutex
	pulses []Transient
	err    error
}

func (p *recordingPulser) Pulse(t Transient) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pulses = append(p.pulses, t)
	return p.err
}

func (p *recordingPulser) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pulses)
}

func TestBellPulser_WritesBEL(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellPulser(&buf)

	if err := p.Pulse(DefaultTransient()); err != nil {
		t.Fatalf("Pulse failed: %v", err)
	}

	if buf.String() != "\a" {
		t.Errorf("Expected a single BEL byte, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("device gone")
}

func TestBellPulser_WrapsWriteError(t *testing.T) {
	p := NewBellPulser(failingWriter{})

	err := p.Pulse(DefaultTransient())
	if err == nil {
		t.Fatal("Pulse on a failing writer should error")
	}
	if !errors.IsTransient(err) {
		t.Error("Bell write failures should classify as transient")
	}
}

func TestDefaultTransient(t *testing.T) {
	tr := DefaultTransient()
	if tr.Intensity != 0.5 || tr.Sharpness != 0.5 {
		t.Errorf("Default transient = %+v, want intensity 0.5 sharpness 0.5", tr)
	}
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	p := New(false)
	if _, ok := p.(NoopPulser); !ok {
		t.Errorf("New(false) should return NoopPulser, got %T", p)
	}
	if err := p.Pulse(DefaultTransient()); err != nil {
		t.Errorf("NoopPulser should never fail: %v", err)
	}
}

func TestEngine_PulsesOncePerTransition(t *testing.T) {
	bus := event.NewBus()
	pulser := &recordingPulser{}
	engine := NewEngine(bus, pulser, logging.NopLogger())
	defer engine.Close()

	bus.Publish(breath.NewPhaseChangedEvent(breath.PhaseInhale, breath.ScaleMax))
	bus.Publish(breath.NewPhaseChangedEvent(breath.PhaseHoldInhale, breath.ScaleMax))
	bus.Publish(breath.NewPhaseChangedEvent(breath.PhaseExhale, breath.ScaleMin))

	if pulser.count() != 3 {
		t.Errorf("Expected one pulse per transition, got %d for 3 transitions", pulser.count())
	}
}

func TestEngine_IgnoresOtherEvents(t *testing.T) {
	bus := event.NewBus()
	pulser := &recordingPulser{}
	engine := NewEngine(bus, pulser, logging.NopLogger())
	defer engine.Close()

	bus.Publish(breath.NewSessionStartedEvent(breath.DefaultDurations()))
	bus.Publish(breath.NewClockTickEvent(1))

	if pulser.count() != 0 {
		t.Errorf("Engine should only pulse on phase transitions, got %d pulses", pulser.count())
	}
}

func TestEngine_PulseFailureIsNonFatal(t *testing.T) {
	bus := event.NewBus()
	pulser := &recordingPulser{err: errors.NewHapticsError("pulse failed", nil)}
	engine := NewEngine(bus, pulser, logging.NopLogger())
	defer engine.Close()

	// Must not panic and must keep attempting subsequent transitions
	bus.Publish(breath.NewPhaseChangedEvent(breath.PhaseInhale, breath.ScaleMax))
	bus.Publish(breath.NewPhaseChangedEvent(breath.PhaseHoldInhale, breath.ScaleMax))

	if pulser.count() != 2 {
		t.Errorf("Failures should not stop later pulses, got %d attempts", pulser.count())
	}
}

func TestEngine_CloseStopsPulses(t *testing.T) {
	bus := event.NewBus()
	pulser := &recordingPulser{}
	engine := NewEngine(bus, pulser, logging.NopLogger())

	bus.Publish(breath.NewPhaseChangedEvent(breath.PhaseInhale, breath.ScaleMax))
	engine.Close()
	bus.Publish(breath.NewPhaseChangedEvent(breath.PhaseHoldInhale, breath.ScaleMax))

	if pulser.count() != 1 {
		t.Errorf("No pulses should play after Close, got %d", pulser.count())
	}

	// Close is idempotent
	engine.Close()
}
