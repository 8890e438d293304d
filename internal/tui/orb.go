package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/breathe/internal/tui/styles"
)

const (
	// minOrbRadius is the orb's rest size in terminal rows.
	minOrbRadius = 2.0
	// maxOrbRadius is the orb's fully inhaled size in terminal rows.
	maxOrbRadius = 8.0

	orbChar = "█"
)

// renderOrb draws a filled circle whose radius interpolates between the rest
// and full sizes as scale moves through [0,1]. Cells are colored by their
// distance from the center using the theme's core-to-edge gradient ramp, and
// the result is centered in the given width and height.
func renderOrb(scale float64, width, height int, th *styles.ThemedStyles) string {
	radius := minOrbRadius + scale*(maxOrbRadius-minOrbRadius)

	// Leave a row of breathing room above and below when space is tight.
	maxFit := float64(height-2) / 2
	if maxFit >= 1 && radius > maxFit {
		radius = maxFit
	}
	if radius < 1 {
		radius = 1
	}

	rows := int(radius)
	// Terminal cells are roughly twice as tall as they are wide, so the
	// horizontal axis is stretched by 2 to keep the orb visually round.
	cols := int(radius * 2)

	ramp := th.OrbRamp
	var b strings.Builder
	for y := -rows; y <= rows; y++ {
		for x := -cols; x <= cols; x++ {
			dist := math.Sqrt(float64(x*x)/4+float64(y*y)) / radius
			if dist > 1 {
				b.WriteString(" ")
				continue
			}
			idx := int(dist * float64(len(ramp)-1))
			b.WriteString(ramp[idx].Render(orbChar))
		}
		if y < rows {
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
