package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "phases.inhale_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Phase durations must be short enough that a session is usable and long
// enough that timers are meaningful.
const (
	minPhaseSeconds = 0.5
	maxPhaseSeconds = 120.0
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.Phases.validate()...)

	// TUI validation
	if c.TUI.TickIntervalMs < 16 || c.TUI.TickIntervalMs > 1000 {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_interval_ms",
			Value:   c.TUI.TickIntervalMs,
			Message: "must be between 16 and 1000",
		})
	}

	// Logging validation
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must not be negative",
		})
	}
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must not be negative",
		})
	}

	return errors
}

// validate checks each phase duration against the allowed range.
func (p *PhasesConfig) validate() []ValidationError {
	fields := []struct {
		name  string
		value float64
	}{
		{"phases.inhale_seconds", p.InhaleSeconds},
		{"phases.hold_inhale_seconds", p.HoldInhaleSeconds},
		{"phases.exhale_seconds", p.ExhaleSeconds},
		{"phases.hold_exhale_seconds", p.HoldExhaleSeconds},
	}

	var errors []ValidationError
	for _, f := range fields {
		if f.value < minPhaseSeconds || f.value > maxPhaseSeconds {
			errors = append(errors, ValidationError{
				Field:   f.name,
				Value:   f.value,
				Message: fmt.Sprintf("must be between %g and %g seconds", minPhaseSeconds, maxPhaseSeconds),
			})
		}
	}
	return errors
}
