package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives the periodic redraw of a review session.
type tickMsg time.Time

const tickInterval = time.Millisecond * 100

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
