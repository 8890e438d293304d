package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/breathe/internal/breath"
	"github.com/Iron-Ham/breathe/internal/config"
	"github.com/Iron-Ham/breathe/internal/event"
	"github.com/Iron-Ham/breathe/internal/haptics"
	"github.com/Iron-Ham/breathe/internal/logging"
	"github.com/Iron-Ham/breathe/internal/tui"
	"github.com/Iron-Ham/breathe/internal/tui/styles"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a breathing session",
	Long: `Start a guided breathing session.
Press space to begin breathing, space again to stop, and q to quit.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("breathe requires an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Close()

	// Register user theme files before resolving the configured theme
	if _, errs := styles.DiscoverCustomThemes(); len(errs) > 0 {
		for _, themeErr := range errs {
			log.Warn("skipping invalid theme file", "error", themeErr.Error())
		}
	}
	styles.SetTheme(styles.ThemeName(cfg.TUI.Theme))

	bus := event.NewBus()
	session := breath.NewSession(cfg.Phases.Durations(), bus, log)

	engine := haptics.NewEngine(bus, haptics.New(cfg.Haptics.Enabled), log)
	defer engine.Close()

	app := tui.New(session, bus, cfg, log)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// newLogger builds the configured logger. File logging is opt-in; when it is
// off everything is discarded so the alt-screen UI stays clean.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	rotation := logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	}
	return logging.NewLogger(cfg.Logging.LogDir(), logging.ParseLevel(cfg.Logging.Level), rotation)
}
