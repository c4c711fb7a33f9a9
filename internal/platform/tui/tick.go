// Package tui provides the Bubble Tea front end for Sports Rundash.
// It handles the terminal UI loop, input mapping and cell rasterization.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the simulation and repaint.
type FrameMsg time.Time

// InputTickMsg is sent to poll the held movement keys.
type InputTickMsg time.Time

// interval converts a rate in Hz to a tick period. Non-positive rates fall
// back to 60 Hz.
func interval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// frameCmd returns a Bubble Tea command that sends the next frame message.
func frameCmd(fps int) tea.Cmd {
	return tea.Tick(interval(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// inputTickCmd returns a Bubble Tea command that sends the next input poll.
func inputTickCmd(rate int) tea.Cmd {
	return tea.Tick(interval(rate), func(t time.Time) tea.Msg {
		return InputTickMsg(t)
	})
}
