package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/breathe/internal/breath"
	"github.com/Iron-Ham/breathe/internal/tui/styles"
	"github.com/Iron-Ham/breathe/internal/util"
)

// View renders the current state
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	th := styles.Current()

	header := m.renderHeader(th)
	footer := m.renderFooter(th)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	orbHeight := m.height - headerHeight - footerHeight
	if orbHeight < 1 {
		orbHeight = 1
	}

	orb := renderOrb(m.anim.scaleAt(m.anim.now), m.width, orbHeight, th)

	return lipgloss.JoinVertical(lipgloss.Left, header, orb, footer)
}

func (m Model) renderHeader(th *styles.ThemedStyles) string {
	title := th.Title.Render("breathe")

	var readout string
	if m.active {
		timer := th.Timer.Render(util.FormatClock(m.elapsed))
		label := m.phaseStyle(th).Render(m.phase.Label())
		readout = timer + th.Muted.Render("  ·  ") + label
	} else {
		readout = th.Subtitle.Render("press space to begin")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, th.Muted.Render("   "), readout)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

func (m Model) phaseStyle(th *styles.ThemedStyles) lipgloss.Style {
	switch m.phase {
	case breath.PhaseInhale:
		return th.PhaseInhale
	case breath.PhaseExhale:
		return th.PhaseExhale
	default:
		return th.PhaseHold
	}
}

func (m Model) renderFooter(th *styles.ThemedStyles) string {
	var b strings.Builder

	if m.notice != "" {
		notice := util.TruncateANSI(th.Secondary.Render(m.notice), m.width)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, notice))
		b.WriteString("\n")
	}

	helpView := m.help.View(m.keys)
	b.WriteString(th.HelpBar.Render(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpView)))

	return b.String()
}
