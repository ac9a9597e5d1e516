package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}
	if m.notice != "" {
		return renderNoticeBar(m.notice, width)
	}

	left := " " + getKeyHints(m)

	right := ""
	if s := m.session; s != nil {
		right = hintStyle.Render(fmt.Sprintf("beats %d/%d  feed %d/%d  +%.1fs",
			s.Timeline.Fired(), s.Timeline.Len(), s.Feed.Len(), s.Feed.Cap(),
			s.Elapsed().Seconds())) + " "
		if s.Timeline.Done() {
			right = lipgloss.NewStyle().Foreground(colorGreen).Render("● complete") + "  " + right
		}
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	switch {
	case m.alerts.Len() > 0:
		return keyHint("Enter", "dismiss")
	case m.showHelp:
		return keyHint("Esc", "close help")
	case m.modalVisible():
		return keyHint("Tab", "next field") + "  " + keyHint("Enter", "sign in") + "  " +
			keyHint("Ctrl+c", "quit")
	}
	return keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " + keyHint("r", "restart") + "  " +
		keyHint("Enter", "click") + "  " + keyHint("PgUp/PgDn", "scroll log")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderNoticeBar(msg string, width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(msg))
}
