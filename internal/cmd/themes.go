package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/breathe/internal/config"
	"github.com/Iron-Ham/breathe/internal/tui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long: `List the built-in color themes and any custom themes found in the
themes directory. Custom themes are YAML files; see the docs for the format.

Select a theme with:
  breathe config set tui.theme <name>

or cycle themes with 't' during a session.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	_, errs := styles.DiscoverCustomThemes()

	active := config.Get().TUI.Theme

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  %s%s\n", name, activeMarker(name, active))
	}

	custom := styles.CustomThemeNames()
	if len(custom) > 0 {
		fmt.Fprintln(out, "\nCustom themes:")
		for _, name := range custom {
			fmt.Fprintf(out, "  %s%s\n", name, activeMarker(name, active))
		}
	}

	fmt.Fprintf(out, "\nCustom theme directory: %s\n", styles.ThemesDir())

	for _, err := range errs {
		fmt.Fprintf(out, "warning: %v\n", err)
	}

	return nil
}

func activeMarker(name, active string) string {
	if name == active {
		return " (active)"
	}
	return ""
}
