package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minLoopWait keeps a late or overdue deadline from spinning the event loop.
const minLoopWait = time.Millisecond

func loopTick(gen int, wait time.Duration) tea.Cmd {
	if wait < minLoopWait {
		wait = minLoopWait
	}
	return tea.Tick(wait, func(_ time.Time) tea.Msg {
		return loopTickMsg{gen: gen}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}
