// Package tui runs a game in the terminal with Bubble Tea.
// It maps keys to actions, drives the simulation clock and draws the
// game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Gen identifies the tick loop that
// scheduled it.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next tick of loop gen at the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
