package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Deep Sea")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	// Base colors
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Orb gradient endpoints (optional - default to primary)
	Orb ThemeOrbColors `yaml:"orb,omitempty"`

	// Phase label colors (optional - default to base colors)
	Phases ThemePhaseColors `yaml:"phases,omitempty"`
}

// ThemeOrbColors defines the orb's gradient endpoints.
type ThemeOrbColors struct {
	Core string `yaml:"core,omitempty"`
	Edge string `yaml:"edge,omitempty"`
}

// ThemePhaseColors defines colors for the phase labels.
type ThemePhaseColors struct {
	Inhale string `yaml:"inhale,omitempty"`
	Hold   string `yaml:"hold,omitempty"`
	Exhale string `yaml:"exhale,omitempty"`
}

// LoadThemeFile reads and parses a theme file from disk.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme %q: %w", path, err)
	}

	return &theme, nil
}

// Validate checks that the theme file has a name and valid colors.
func (t *ThemeFile) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("theme name is required")
	}

	required := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}
	for field, color := range required {
		if color == "" {
			return fmt.Errorf("colors.%s is required", field)
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("colors.%s: %q is not a valid hex color", field, color)
		}
	}

	optional := map[string]string{
		"orb.core":      t.Colors.Orb.Core,
		"orb.edge":      t.Colors.Orb.Edge,
		"phases.inhale": t.Colors.Phases.Inhale,
		"phases.hold":   t.Colors.Phases.Hold,
		"phases.exhale": t.Colors.Phases.Exhale,
	}
	for field, color := range optional {
		if color != "" && !isValidHexColor(color) {
			return fmt.Errorf("colors.%s: %q is not a valid hex color", field, color)
		}
	}

	return nil
}

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file into a ColorPalette, filling optional
// colors with sensible defaults from the required ones.
func (t *ThemeFile) ToPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),

		OrbCore: colorOrDefault(t.Colors.Orb.Core, t.Colors.Text),
		OrbEdge: colorOrDefault(t.Colors.Orb.Edge, t.Colors.Primary),

		PhaseInhale: colorOrDefault(t.Colors.Phases.Inhale, t.Colors.Primary),
		PhaseHold:   colorOrDefault(t.Colors.Phases.Hold, t.Colors.Secondary),
		PhaseExhale: colorOrDefault(t.Colors.Phases.Exhale, t.Colors.Primary),
	}
}

func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

var (
	customMu     sync.RWMutex
	customThemes = make(map[ThemeName]*ThemeFile)
)

// RegisterCustomTheme adds a custom theme to the registry.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[name] = theme
}

// GetCustomTheme returns a registered custom theme, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	customMu.RLock()
	defer customMu.RUnlock()
	return customThemes[name]
}

// CustomThemeNames returns the names of all registered custom themes.
func CustomThemeNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()

	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	return names
}

// IsCustomTheme checks if a name refers to a registered custom theme.
func IsCustomTheme(name ThemeName) bool {
	return GetCustomTheme(name) != nil
}

// ClearCustomThemes removes all registered custom themes. Used by tests.
func ClearCustomThemes() {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes = make(map[ThemeName]*ThemeFile)
}

// themesDirFunc computes the custom themes directory; tests may override it.
var themesDirFunc = defaultThemesDir

func defaultThemesDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "breathe", "themes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".breathe", "themes")
	}
	return filepath.Join(home, ".config", "breathe", "themes")
}

// ThemesDir returns the directory scanned for custom theme files.
func ThemesDir() string {
	return themesDirFunc()
}

// SetThemesDirFunc overrides the themes directory lookup and returns the
// previous function so tests can restore it.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFunc
	themesDirFunc = fn
	return prev
}

// DiscoverCustomThemes scans the themes directory for *.yaml files and
// registers every valid theme under its filename (without extension).
// It returns the names registered and any per-file errors; a missing
// directory is not an error.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("failed to read themes directory: %w", err)}
	}

	var names []string
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		theme, err := LoadThemeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		RegisterCustomTheme(ThemeName(name), theme)
		names = append(names, name)
	}

	return names, errs
}
