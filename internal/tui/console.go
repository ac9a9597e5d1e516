package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/t4skforce/threatsim/internal/models"
	"github.com/t4skforce/threatsim/internal/sim"
)

// Console renders the threat log and follows the newest entry.
type Console struct {
	sink     *sim.LogSink
	rendered int // entries already in the viewport
	viewport viewport.Model
	width    int
	height   int
}

// NewConsole creates an empty console.
func NewConsole() *Console {
	return &Console{viewport: viewport.New(80, 10)}
}

// Reset points the console at a new session's log.
func (c *Console) Reset(sink *sim.LogSink) {
	c.sink = sink
	c.rendered = -1
	c.Sync()
}

// SetSize updates dimensions.
func (c *Console) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.Width = width
	c.viewport.Height = height
	c.rendered = -1
	c.Sync()
}

// Sync re-renders when entries were appended and scrolls to the newest one.
func (c *Console) Sync() {
	if c.sink == nil || c.sink.Len() == c.rendered {
		return
	}
	entries := c.sink.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, renderLogLine(e, c.width))
	}
	c.viewport.SetContent(strings.Join(lines, "\n"))
	c.viewport.GotoBottom()
	c.rendered = len(entries)
}

// ScrollUp scrolls back through history.
func (c *Console) ScrollUp() { c.viewport.HalfViewUp() }

// ScrollDown scrolls toward the newest entry.
func (c *Console) ScrollDown() { c.viewport.HalfViewDown() }

// View renders the console.
func (c *Console) View() string {
	if c.sink == nil || c.sink.Len() == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("Waiting for activity...")
	}
	return c.viewport.View()
}

// renderLogLine formats one entry with a category gutter and color.
func renderLogLine(e sim.LogEntry, width int) string {
	gutter := gutterStyle.Render("│")
	if e.Category == models.CategoryDanger {
		gutter = gutterDangerStyle.Render("┃")
	}
	text := categoryStyle(e.Category).Render(e.String())
	line := gutter + " " + text
	if width > 0 && lipgloss.Width(line) > width {
		return truncateContent(line, width, 1)
	}
	return line
}

// renderFeed renders the network feed window, oldest first.
func renderFeed(entries []sim.FeedEntry, capacity int) string {
	lines := make([]string, 0, capacity)
	for _, e := range entries {
		if e.Flagged {
			lines = append(lines, feedFlaggedStyle.Render(e.Text))
		} else {
			lines = append(lines, feedLineStyle.Render(e.Text))
		}
	}
	// Keep the panel height stable while the window fills.
	for len(lines) < capacity {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
