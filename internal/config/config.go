package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/breathe/internal/breath"
)

// Config represents the complete breathe configuration
type Config struct {
	Phases  PhasesConfig  `mapstructure:"phases"`
	Haptics HapticsConfig `mapstructure:"haptics"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PhasesConfig holds the per-phase durations in seconds.
// These are configuration constants: the running UI exposes no way to
// change them.
type PhasesConfig struct {
	// InhaleSeconds is the length of the inhale phase
	InhaleSeconds float64 `mapstructure:"inhale_seconds"`
	// HoldInhaleSeconds is the length of the hold after inhaling
	HoldInhaleSeconds float64 `mapstructure:"hold_inhale_seconds"`
	// ExhaleSeconds is the length of the exhale phase
	ExhaleSeconds float64 `mapstructure:"exhale_seconds"`
	// HoldExhaleSeconds is the length of the hold after exhaling
	HoldExhaleSeconds float64 `mapstructure:"hold_exhale_seconds"`
}

// Durations converts the configured seconds into breath.Durations.
func (c *PhasesConfig) Durations() breath.Durations {
	return breath.Durations{
		Inhale:     secondsToDuration(c.InhaleSeconds),
		HoldInhale: secondsToDuration(c.HoldInhaleSeconds),
		Exhale:     secondsToDuration(c.ExhaleSeconds),
		HoldExhale: secondsToDuration(c.HoldExhaleSeconds),
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// HapticsConfig controls the tactile pulse played on phase transitions
type HapticsConfig struct {
	// Enabled plays a terminal bell pulse on every phase transition
	Enabled bool `mapstructure:"enabled"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "dracula", "nord", "ember", or a custom theme name
	Theme string `mapstructure:"theme"`
	// TickIntervalMs is how often the orb animation re-renders (in milliseconds)
	TickIntervalMs int `mapstructure:"tick_interval_ms"`
}

// TickInterval returns the render tick interval as a time.Duration
func (c *TUIConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled turns file logging on; when false, nothing is written
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level to log: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is the directory for log files (default: config dir)
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the log file size that triggers rotation
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files
	Compress bool `mapstructure:"compress"`
}

// Default returns the default configuration: standard 4-4-4-4 box breathing
// with haptics on and file logging off.
func Default() *Config {
	return &Config{
		Phases: PhasesConfig{
			InhaleSeconds:     4.0,
			HoldInhaleSeconds: 4.0,
			ExhaleSeconds:     4.0,
			HoldExhaleSeconds: 4.0,
		},
		Haptics: HapticsConfig{
			Enabled: true,
		},
		TUI: TUIConfig{
			Theme:          "default",
			TickIntervalMs: 100,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  5,
			MaxBackups: 2,
			Compress:   false,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Phase defaults
	viper.SetDefault("phases.inhale_seconds", defaults.Phases.InhaleSeconds)
	viper.SetDefault("phases.hold_inhale_seconds", defaults.Phases.HoldInhaleSeconds)
	viper.SetDefault("phases.exhale_seconds", defaults.Phases.ExhaleSeconds)
	viper.SetDefault("phases.hold_exhale_seconds", defaults.Phases.HoldExhaleSeconds)

	// Haptics defaults
	viper.SetDefault("haptics.enabled", defaults.Haptics.Enabled)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.tick_interval_ms", defaults.TUI.TickIntervalMs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "breathe")
	}
	// Fall back to ~/.config/breathe
	home, err := os.UserHomeDir()
	if err != nil {
		return ".breathe"
	}
	return filepath.Join(home, ".config", "breathe")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory log files are written to: the configured
// directory, or a "logs" subdirectory of the config dir when unset.
func (c *LoggingConfig) LogDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}
