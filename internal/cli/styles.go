package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/t4skforce/threatsim/internal/models"
)

// Adaptive colors matching the TUI palette.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorSlate  = lipgloss.AdaptiveColor{Light: "244", Dark: "248"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleVersion = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
	styleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleAlert   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// Log category styles.
var categoryStyles = map[models.Category]lipgloss.Style{
	models.CategoryInfo:    lipgloss.NewStyle().Foreground(colorSlate),
	models.CategoryDanger:  lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	models.CategorySuccess: lipgloss.NewStyle().Foreground(colorGreen),
	models.CategoryWarn:    lipgloss.NewStyle().Foreground(colorYellow),
}

// Feed styles.
var (
	styleFeed        = lipgloss.NewStyle().Foreground(colorGreen)
	styleFeedFlagged = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)
