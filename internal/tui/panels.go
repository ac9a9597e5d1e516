package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// panelLayout holds computed dimensions for the page/console split.
type panelLayout struct {
	leftWidth     int
	rightWidth    int
	contentHeight int
	dividerCol    int // x position of the divider for mouse hit testing
}

func computeLayout(width, height int, splitRatio float64) panelLayout {
	// Reserve: 1 line header, 1 line status bar
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	usable := width - 1 // 1 for divider
	leftWidth := int(float64(usable) * splitRatio)
	rightWidth := usable - leftWidth

	if leftWidth < 10 {
		leftWidth = 10
	}
	if rightWidth < 10 {
		rightWidth = 10
	}

	return panelLayout{
		leftWidth:     leftWidth,
		rightWidth:    rightWidth,
		contentHeight: contentHeight,
		dividerCol:    leftWidth,
	}
}

// inner returns the content dimensions of each panel inside its border.
func (l panelLayout) inner() (leftInner, rightInner, innerHeight int) {
	return max(l.leftWidth-2, 1), max(l.rightWidth-2, 1), max(l.contentHeight-2, 1)
}

func renderPanels(leftContent, rightContent string, layout panelLayout) string {
	leftInner, rightInner, innerHeight := layout.inner()

	left := pageBorderStyle.
		Width(leftInner).
		Height(innerHeight).
		Render(truncateContent(leftContent, leftInner, innerHeight))

	right := consoleBorderStyle.
		Width(rightInner).
		Height(innerHeight).
		Render(truncateContent(rightContent, rightInner, innerHeight))

	divider := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(strings.TrimSuffix(strings.Repeat("│\n", lipgloss.Height(left)), "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, divider, right)
}

// truncateContent ensures content fits within the given dimensions.
func truncateContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	// ANSI-aware so styled lines keep their escapes intact
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}

	return strings.Join(lines, "\n")
}
