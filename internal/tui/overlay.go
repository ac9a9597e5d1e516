package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderOverlay places box centered over base. When dim is set the base is
// greyed out first, as a modal backdrop.
func renderOverlay(base, box string, width, height int, dim bool) string {
	rows := strings.Split(base, "\n")
	if dim {
		for i, line := range rows {
			rows[i] = overlayDimStyle.Render(ansi.Strip(line))
		}
	}

	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, lipgloss.Width(l))
	}

	top := max((height-len(boxLines))/2, 1)
	left := max((width-boxWidth)/2, 1)

	for i, line := range boxLines {
		row := top + i
		if row >= len(rows) {
			break
		}
		bg := rows[row]
		bgWidth := lipgloss.Width(bg)

		leftPart := ansi.Truncate(bg, left, "")
		if w := lipgloss.Width(leftPart); w < left {
			leftPart += strings.Repeat(" ", left-w)
		}

		rightPart := ""
		if start := left + lipgloss.Width(line); start < bgWidth {
			rightPart = ansi.Cut(bg, start, bgWidth)
		}

		rows[row] = leftPart + "\033[0m" + line + "\033[0m" + rightPart
	}

	return strings.Join(rows, "\n")
}
