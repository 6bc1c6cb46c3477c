// Package tui provides the Bubble Tea integration for crawlcore: the play
// loop, terminal input translation, the scenario menu, session history and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine tick. Session is the ID of the
// session that scheduled it; ticks of an earlier session are ignored.
type TickMsg struct {
	Session string
	Time    time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, session string) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Session: session, Time: t}
	})
}
