package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/t4skforce/threatsim/internal/models"
	"github.com/t4skforce/threatsim/internal/sim"
)

// renderTargetPage draws the victim page: the loading indicator and whatever
// was inserted into the dynamic zone.
func renderTargetPage(page *sim.Page, spin spinner.Model, width int) string {
	lines := []string{
		pageTitleStyle.Render("Secure Portal"),
		hintStyle.Render("Pending approvals"),
		"",
	}

	if page.Visible(models.SurfaceLoader) {
		lines = append(lines, loaderStyle.Render(spin.View()+" Loading approvals..."))
	}

	if zone, ok := page.Surface(models.SurfaceDynamic); ok && zone.Visible {
		for _, n := range zone.Children {
			lines = append(lines, "", renderFragment(n.Fragment, width))
		}
		if len(zone.Children) > 0 {
			lines = append(lines, hintStyle.Render("Enter or click to continue"))
		}
	}

	return strings.Join(lines, "\n")
}

// renderFragment draws a declarative fragment. The disguised overlay link a
// button carries is invisible by design, so only the button is drawn.
func renderFragment(f models.Fragment, width int) string {
	label := f.Label
	if label == "" {
		label = f.Kind
	}
	switch f.Kind {
	case "button":
		w := max(width-4, lipgloss.Width(label)+4)
		return fakeButtonStyle.Width(w).Render("✔✔ " + strings.ToUpper(label))
	case "link":
		return fakeLinkStyle.Render(label)
	default:
		return label
	}
}
