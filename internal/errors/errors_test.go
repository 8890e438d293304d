package errors

import (
	"fmt"
	"testing"
)

func TestSessionError_Message(t *testing.T) {
	err := NewSessionError("start failed", nil)
	if err.Error() != "session: start failed" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestSessionError_WrapsCause(t *testing.T) {
	err := NewSessionError("start failed", ErrSessionActive)

	if !Is(err, ErrSessionActive) {
		t.Error("errors.Is should match the wrapped cause")
	}

	var sessionErr *SessionError
	if !As(err, &sessionErr) {
		t.Error("errors.As should match *SessionError")
	}
}

func TestHapticsError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("device busy")
	err := NewHapticsError("pulse failed", cause)

	if Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
	if err.Error() != "haptics: pulse failed: device busy" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"haptics error type", NewHapticsError("pulse failed", nil), true},
		{"wrapped pulse sentinel", fmt.Errorf("play: %w", ErrPulseFailed), true},
		{"wrapped unavailable sentinel", fmt.Errorf("init: %w", ErrPulserUnavailable), true},
		{"session error", NewSessionError("start failed", nil), false},
		{"plain error", New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.expected {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
