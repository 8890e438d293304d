package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// OrbRampSteps is the number of gradient rings the orb is drawn with.
const OrbRampSteps = 12

// ThemedStyles contains all the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	Palette *ColorPalette

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Header
	Header lipgloss.Style

	// Session readout
	Timer      lipgloss.Style
	PhaseLabel lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// OrbRamp holds one style per gradient ring, core (index 0) to edge.
	OrbRamp []lipgloss.Style

	// Phase label colors keyed by breathing direction
	PhaseInhale lipgloss.Style
	PhaseHold   lipgloss.Style
	PhaseExhale lipgloss.Style
}

// BuildStyles creates a ThemedStyles from a color palette.
func BuildStyles(p *ColorPalette) *ThemedStyles {
	return &ThemedStyles{
		Palette: p,

		Primary:   lipgloss.NewStyle().Foreground(p.Primary),
		Secondary: lipgloss.NewStyle().Foreground(p.Secondary),
		Warning:   lipgloss.NewStyle().Foreground(p.Warning),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Text:      lipgloss.NewStyle().Foreground(p.Text),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border),

		Timer: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		PhaseLabel: lipgloss.NewStyle().
			Bold(true),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		OrbRamp: orbRamp(p.OrbCore, p.OrbEdge, OrbRampSteps),

		PhaseInhale: lipgloss.NewStyle().Bold(true).Foreground(p.PhaseInhale),
		PhaseHold:   lipgloss.NewStyle().Bold(true).Foreground(p.PhaseHold),
		PhaseExhale: lipgloss.NewStyle().Bold(true).Foreground(p.PhaseExhale),
	}
}

// orbRamp blends the core color toward the edge color over the given number
// of steps, one foreground style per ring.
func orbRamp(core, edge lipgloss.Color, steps int) []lipgloss.Style {
	if steps < 2 {
		steps = 2
	}

	from, err1 := colorful.Hex(string(core))
	to, err2 := colorful.Hex(string(edge))
	if err1 != nil || err2 != nil {
		// Unparseable colors degrade to a flat ramp of the core color
		ramp := make([]lipgloss.Style, steps)
		for i := range ramp {
			ramp[i] = lipgloss.NewStyle().Foreground(core)
		}
		return ramp
	}

	ramp := make([]lipgloss.Style, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		c := from.BlendLuv(to, t).Clamped()
		ramp[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return ramp
}

var (
	themeMu      sync.RWMutex
	currentName  = ThemeDefault
	currentStyle = BuildStyles(DefaultPalette())
)

// Current returns the active themed styles.
func Current() *ThemedStyles {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentStyle
}

// CurrentThemeName returns the name of the active theme.
func CurrentThemeName() ThemeName {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentName
}

// SetTheme rebuilds the active styles from the named theme.
// Unknown names fall back to the default palette.
func SetTheme(name ThemeName) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentName = name
	currentStyle = BuildStyles(GetPalette(name))
}

// NextTheme switches to the next valid theme in declaration order and
// returns its name. Used by the theme-cycling key.
func NextTheme() ThemeName {
	names := ValidThemes()
	current := string(CurrentThemeName())

	next := names[0]
	for i, n := range names {
		if n == current && i+1 < len(names) {
			next = names[i+1]
			break
		}
	}

	SetTheme(ThemeName(next))
	return ThemeName(next)
}
