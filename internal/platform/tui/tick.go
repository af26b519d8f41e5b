// Package tui runs games in a terminal with Bubble Tea: the tick loop, key
// bindings, colored rendering, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// TickMsg asks the model to advance the simulation one step.
type TickMsg time.Time

// tickInterval is the frame period for a rate in ticks per second.
// Non-positive rates fall back to core.DefaultTickRate.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
