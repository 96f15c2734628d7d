// Package tui provides the Bubble Tea front-end for Candlelight.
// It handles the terminal UI loop, input mapping, pacing delays and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// delayKind says what happens when a pacing delay runs out.
type delayKind int

const (
	delayNextLevel delayKind = iota
	delayAdvanceTutorial
)

// DelayMsg is sent when a pacing delay has elapsed. Gen ties the message to
// the level it was scheduled for so a restart discards stale timers.
type DelayMsg struct {
	Kind delayKind
	Gen  int
}

// delayCmd returns a command that sends msg after d.
func delayCmd(d time.Duration, msg DelayMsg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
