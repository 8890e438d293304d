// Package errors provides centralized error definitions and error handling
// utilities for the breathe codebase. It defines domain-specific errors,
// error constructors with cause wrapping, and classification helpers used to
// decide whether a failure is fatal or merely logged.
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewHapticsError("pulse failed", errors.ErrPulseFailed)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrPulseFailed) { ... }
//
//	var hapticsErr *errors.HapticsError
//	if errors.As(err, &hapticsErr) { ... }
//
//	if errors.IsTransient(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Session-related sentinel errors
var (
	// ErrSessionActive indicates that a session is already running.
	ErrSessionActive = New("session already active")
	// ErrSessionInactive indicates that a session is not currently active.
	ErrSessionInactive = New("session is not active")
)

// Haptics-related sentinel errors
var (
	// ErrPulserUnavailable indicates that no tactile device could be initialized.
	ErrPulserUnavailable = New("tactile device unavailable")
	// ErrPulseFailed indicates that a single pulse failed to play.
	ErrPulseFailed = New("pulse failed to play")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// SessionError represents an error from session lifecycle management.
type SessionError struct {
	message string
	cause   error
}

// NewSessionError creates a SessionError wrapping the given cause.
func NewSessionError(message string, cause error) *SessionError {
	return &SessionError{message: message, cause: cause}
}

func (e *SessionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("session: %s: %v", e.message, e.cause)
	}
	return fmt.Sprintf("session: %s", e.message)
}

// Unwrap returns the underlying error, if any.
func (e *SessionError) Unwrap() error { return e.cause }

// HapticsError represents a failure in the tactile feedback collaborator.
// Haptics errors are always transient: the session continues and the pulse
// is skipped for that transition.
type HapticsError struct {
	message string
	cause   error
}

// NewHapticsError creates a HapticsError wrapping the given cause.
func NewHapticsError(message string, cause error) *HapticsError {
	return &HapticsError{message: message, cause: cause}
}

func (e *HapticsError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("haptics: %s: %v", e.message, e.cause)
	}
	return fmt.Sprintf("haptics: %s", e.message)
}

// Unwrap returns the underlying error, if any.
func (e *HapticsError) Unwrap() error { return e.cause }

// IsTransient reports whether the error is non-fatal and the operation
// should be skipped rather than aborting the session. All haptics errors
// are transient.
func IsTransient(err error) bool {
	var hapticsErr *HapticsError
	if As(err, &hapticsErr) {
		return true
	}
	return Is(err, ErrPulseFailed) || Is(err, ErrPulserUnavailable)
}
