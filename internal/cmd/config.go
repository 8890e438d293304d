package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/breathe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify breathe configuration",
	Long: `View or modify breathe configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  breathe config set phases.inhale_seconds 5
  breathe config set tui.theme nord
  breathe config set haptics.enabled false

Valid keys:
  phases.inhale_seconds       - Length of the inhale phase
  phases.hold_inhale_seconds  - Length of the hold after inhaling
  phases.exhale_seconds       - Length of the exhale phase
  phases.hold_exhale_seconds  - Length of the hold after exhaling
  haptics.enabled             - Pulse on phase transitions (true/false)
  tui.theme                   - Color theme name
  tui.tick_interval_ms        - Animation refresh interval in milliseconds
  logging.enabled             - Write debug logs to file (true/false)
  logging.level               - Minimum level to log (debug/info/warn/error)
  logging.max_size_mb         - Log size that triggers rotation
  logging.max_backups         - Rotated log files to keep
  logging.compress            - Gzip rotated logs (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/breathe/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "phases:")
	fmt.Fprintf(out, "  inhale_seconds: %g\n", cfg.Phases.InhaleSeconds)
	fmt.Fprintf(out, "  hold_inhale_seconds: %g\n", cfg.Phases.HoldInhaleSeconds)
	fmt.Fprintf(out, "  exhale_seconds: %g\n", cfg.Phases.ExhaleSeconds)
	fmt.Fprintf(out, "  hold_exhale_seconds: %g\n", cfg.Phases.HoldExhaleSeconds)

	fmt.Fprintln(out, "haptics:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Haptics.Enabled)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  tick_interval_ms: %d\n", cfg.TUI.TickIntervalMs)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  compress: %v\n", cfg.Logging.Compress)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	validKeys := map[string]string{
		"phases.inhale_seconds":      "float",
		"phases.hold_inhale_seconds": "float",
		"phases.exhale_seconds":      "float",
		"phases.hold_exhale_seconds": "float",
		"haptics.enabled":            "bool",
		"tui.theme":                  "string",
		"tui.tick_interval_ms":       "int",
		"logging.enabled":            "bool",
		"logging.level":              "string",
		"logging.max_size_mb":        "int",
		"logging.max_backups":        "int",
		"logging.compress":           "bool",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'breathe config set --help' to see valid keys", key)
	}

	typedValue, err := parseConfigValue(key, keyType, value)
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set the value in viper and re-validate the resulting config
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("rejected: %w", err)
	}

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

func parseConfigValue(key, keyType, value string) (any, error) {
	switch keyType {
	case "string":
		return value, nil
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return intVal, nil
	case "float":
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected number", key)
		}
		return floatVal, nil
	default:
		return nil, fmt.Errorf("unknown value type for %s", key)
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'breathe config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Generate a commented config file
	configContent := `# Breathe Configuration
# See: https://github.com/Iron-Ham/breathe

# Phase lengths in seconds. Standard box breathing is 4-4-4-4.
phases:
  inhale_seconds: 4
  hold_inhale_seconds: 4
  exhale_seconds: 4
  hold_exhale_seconds: 4

# Tactile feedback on phase transitions (terminal bell)
haptics:
  enabled: true

# TUI (terminal user interface) settings
tui:
  # Color theme: default, dracula, nord, ember, or a custom theme name.
  # Custom themes are YAML files in the themes/ directory next to this file.
  theme: default
  # Animation refresh interval in milliseconds
  tick_interval_ms: 100

# Debug logging (off by default)
logging:
  enabled: false
  # Minimum level: debug, info, warn, error
  level: info
  # Log file size in megabytes that triggers rotation
  max_size_mb: 5
  # Number of rotated log files to keep
  max_backups: 2
  # Gzip rotated log files
  compress: false
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize breathe's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", configFile)
	fmt.Fprintln(out, "  2. $HOME/.config/breathe/config.yaml")
	fmt.Fprintln(out, "  3. ./config.yaml (current directory)")
	fmt.Fprintln(out, "\nEnvironment variables: BREATHE_* (e.g., BREATHE_PHASES_INHALE_SECONDS)")

	return nil
}
