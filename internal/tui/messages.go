package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/breathe/internal/breath"
)

// Messages forwarded from the event bus into the program's update loop.
type (
	sessionStartedMsg struct{ durations breath.Durations }
	sessionStoppedMsg struct{ elapsed int }
	phaseChangedMsg   struct {
		phase breath.Phase
		scale breath.ScaleTarget
	}
	clockTickMsg struct{ elapsed int }
)

// tickMsg drives rendering and animation at a fixed cadence.
type tickMsg time.Time

// noticeExpiredMsg clears the transient status line.
type noticeExpiredMsg struct{}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func expireNotice() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}
