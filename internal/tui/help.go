package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"q / Ctrl+c", "Quit"},
			{"?", "Toggle help"},
			{"r", "Restart the demo"},
		},
	},
	{
		title: "Target Page",
		keys: []helpKey{
			{"Enter / Space", "Click the injected button"},
			{"(click)", "Click the injected button"},
		},
	},
	{
		title: "Threat Console",
		keys: []helpKey{
			{"PgUp/PgDn", "Scroll log"},
		},
	},
	{
		title: "Phishing Modal",
		keys: []helpKey{
			{"Tab", "Next field"},
			{"Shift+Tab", "Previous field"},
			{"Enter", "Sign in"},
		},
	},
	{
		title: "Alerts",
		keys: []helpKey{
			{"Enter / Esc", "Dismiss"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 56
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(16).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}

// renderAlert renders a blocking alert box.
func renderAlert(msg string) string {
	body := msg + "\n\n" + lipgloss.NewStyle().Foreground(colorDim).Bold(false).Render("Press Enter to dismiss")
	return alertStyle.Render(body)
}
