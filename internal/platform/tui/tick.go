// Package tui provides the Bubble Tea host for Crystal Quest.
// It schedules frames, turns key presses into held input, and wires the
// layout menu, scoreboard and SSH server around the pure quest session.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crystal-quest/internal/config"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the tick
// loop that scheduled it so a stale loop can be dropped after pause/resume.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickGen hands out loop generations. It is shared by every Model so a
// stale TickMsg from a closed game can never match a newer one.
var tickGen atomic.Int64

func nextTickGen() int {
	return int(tickGen.Add(1))
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// ConfigMsg carries tuning reloaded from disk.
type ConfigMsg struct {
	Config config.QuestConfig
}

// ConfigErrMsg reports a reload that failed to parse.
type ConfigErrMsg struct {
	Err error
}

// waitForConfig blocks on the watcher until a reload or an error arrives.
// It returns nil once the watcher is closed.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return ConfigMsg{Config: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigErrMsg{Err: err}
		}
	}
}
