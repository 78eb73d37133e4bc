// Package tui provides the Bubble Tea frontend for Gem Crossing.
// It handles the terminal UI loop, input mapping, menus, the scoreboard
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game model to advance the engine by one frame.
type TickMsg time.Time

// frameInterval is the time between frames at rate frames per second.
// Non-positive rates run at 60.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
