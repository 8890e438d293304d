// Package styles provides the color palettes and lipgloss styles for the
// breathe TUI, including built-in themes and custom themes loaded from YAML.
package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Calm teal/sand dark theme
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
	ThemeEmber   ThemeName = "ember"   // Warm amber/rose candlelight theme
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeEmber),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(ThemeName(name))
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (title, emphasis)
	Primary lipgloss.Color
	// Secondary accent color (help keys, the active indicator)
	Secondary lipgloss.Color
	// Warning color (degraded states)
	Warning lipgloss.Color
	// Error color (failures)
	Error lipgloss.Color
	// Muted color (de-emphasized text)
	Muted lipgloss.Color
	// Surface color (panel backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (panel borders)
	Border lipgloss.Color

	// Orb gradient endpoints: the orb's rings blend from core to edge
	OrbCore lipgloss.Color
	OrbEdge lipgloss.Color

	// Phase label colors
	PhaseInhale lipgloss.Color
	PhaseHold   lipgloss.Color
	PhaseExhale lipgloss.Color
}

// DefaultPalette returns the calm teal/sand dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#5EEAD4"), // Teal (teal-300)
		Secondary: lipgloss.Color("#FBBF24"), // Amber
		Warning:   lipgloss.Color("#F59E0B"), // Amber (deeper)
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		OrbCore: lipgloss.Color("#99F6E4"), // Pale teal
		OrbEdge: lipgloss.Color("#0D9488"), // Deep teal

		PhaseInhale: lipgloss.Color("#5EEAD4"), // Teal
		PhaseHold:   lipgloss.Color("#FBBF24"), // Amber
		PhaseExhale: lipgloss.Color("#93C5FD"), // Soft blue
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Purple
		Secondary: lipgloss.Color("#50FA7B"), // Green
		Warning:   lipgloss.Color("#FFB86C"), // Orange
		Error:     lipgloss.Color("#FF5555"), // Red
		Muted:     lipgloss.Color("#6272A4"), // Comment blue-gray
		Surface:   lipgloss.Color("#282A36"), // Background
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#6272A4"), // Comment

		OrbCore: lipgloss.Color("#FF79C6"), // Pink
		OrbEdge: lipgloss.Color("#BD93F9"), // Purple

		PhaseInhale: lipgloss.Color("#8BE9FD"), // Cyan
		PhaseHold:   lipgloss.Color("#F1FA8C"), // Yellow
		PhaseExhale: lipgloss.Color("#BD93F9"), // Purple
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Frost cyan
		Secondary: lipgloss.Color("#A3BE8C"), // Aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Aurora red
		Muted:     lipgloss.Color("#7B88A1"), // Lightened polar night
		Surface:   lipgloss.Color("#3B4252"), // Polar night
		Text:      lipgloss.Color("#ECEFF4"), // Snow storm
		Border:    lipgloss.Color("#4C566A"), // Polar night light

		OrbCore: lipgloss.Color("#ECEFF4"), // Snow storm
		OrbEdge: lipgloss.Color("#5E81AC"), // Frost blue

		PhaseInhale: lipgloss.Color("#88C0D0"), // Frost cyan
		PhaseHold:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		PhaseExhale: lipgloss.Color("#81A1C1"), // Frost blue
	}
}

// EmberPalette returns the warm candlelight theme palette.
func EmberPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#FDBA74"), // Soft orange
		Secondary: lipgloss.Color("#FCA5A5"), // Rose
		Warning:   lipgloss.Color("#FBBF24"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red
		Muted:     lipgloss.Color("#A8A29E"), // Warm gray
		Surface:   lipgloss.Color("#292524"), // Warm dark
		Text:      lipgloss.Color("#FAFAF9"), // Warm white
		Border:    lipgloss.Color("#78716C"), // Warm gray-500

		OrbCore: lipgloss.Color("#FED7AA"), // Pale peach
		OrbEdge: lipgloss.Color("#C2410C"), // Burnt orange

		PhaseInhale: lipgloss.Color("#FDBA74"), // Soft orange
		PhaseHold:   lipgloss.Color("#FCD34D"), // Warm yellow
		PhaseExhale: lipgloss.Color("#FCA5A5"), // Rose
	}
}

// GetPalette returns the palette for a theme name.
// Unknown names fall back to the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeEmber:
		return EmberPalette()
	case ThemeDefault:
		return DefaultPalette()
	}

	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}
	return DefaultPalette()
}
