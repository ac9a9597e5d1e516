package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/t4skforce/threatsim/internal/models"
	"github.com/t4skforce/threatsim/internal/sim"
)

func renderHeader(name, sessionID string, page *sim.Page, width int) string {
	brand := brandStyle.Render("⚠ threatsim")
	title := headerStyle.Render(name)

	clock := "--:--:--"
	if s, ok := page.Surface(models.SurfaceClock); ok && s.Text != "" {
		clock = s.Text
	}

	left := fmt.Sprintf(" %s  %s", brand, title)
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}
	right := hintStyle.Render(sessionID) + "  " + lipgloss.NewStyle().Foreground(colorCyan).Render(clock) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
