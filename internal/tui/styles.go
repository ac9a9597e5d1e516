package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/t4skforce/threatsim/internal/models"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorSlate  = lipgloss.AdaptiveColor{Light: "244", Dark: "248"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	pageBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)

	consoleBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorRed)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)
)

// Log category styles.
var categoryStyles = map[models.Category]lipgloss.Style{
	models.CategoryInfo:    lipgloss.NewStyle().Foreground(colorSlate),
	models.CategoryDanger:  lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	models.CategorySuccess: lipgloss.NewStyle().Foreground(colorGreen),
	models.CategoryWarn:    lipgloss.NewStyle().Foreground(colorYellow),
}

var (
	gutterDangerStyle = lipgloss.NewStyle().Foreground(colorRed)
	gutterStyle       = lipgloss.NewStyle().Foreground(colorDim)
)

// categoryStyle returns the style for c, falling back to info.
func categoryStyle(c models.Category) lipgloss.Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[models.CategoryInfo]
}

// Network feed styles.
var (
	feedLineStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	feedFlaggedStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// Target page styles.
var (
	pageTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	loaderStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	fakeButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorYellow).
			Foreground(colorYellow).
			Bold(true).
			Align(lipgloss.Center)

	fakeLinkStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Underline(true)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorOrange).
			Padding(1, 2)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorRed).
			Foreground(colorRed).
			Bold(true).
			Padding(1, 3)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Credential form styles.
var (
	formLabelStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(colorDim)

	formFocusedLabelStyle = lipgloss.NewStyle().
				Width(10).
				Foreground(colorWhite).
				Bold(true)
)
