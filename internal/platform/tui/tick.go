// Package tui runs a game in the terminal with Bubble Tea.
// It handles the frame loop, maps keys and mouse presses to actions and
// draws the game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-shark/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// one frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.FrameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
