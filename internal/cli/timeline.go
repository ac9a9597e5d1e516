package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/t4skforce/threatsim/internal/config"
	"github.com/t4skforce/threatsim/internal/models"
)

var timelineScenarioFlag string

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the beat schedule without running it",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		sc, source, err := config.ResolveScenario(timelineScenarioFlag, settings)
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
		printTimeline(cmd.OutOrStdout(), sc, source)
		return nil
	},
}

func init() {
	timelineCmd.Flags().StringVarP(&timelineScenarioFlag, "scenario", "s", "", "scenario file")
}

func printTimeline(w io.Writer, sc *models.Scenario, source string) {
	fmt.Fprintf(w, "%s %s\n", styleCommand.Render(sc.Name), scenarioSourceLabel(source))
	fmt.Fprintf(w, "%s every %v, %s every %v (window %d)\n\n",
		styleLabel.Render("clock"), sc.Clock.Interval,
		styleLabel.Render("feed"), sc.Feed.Interval, sc.Feed.Capacity)

	for _, b := range sc.SortedBeats() {
		fmt.Fprintf(w, "%s  %s\n", styleVersion.Render(fmt.Sprintf("+%6dms", b.At.Milliseconds())), styleValue.Render(b.Name))
		for _, a := range b.Actions {
			fmt.Fprintf(w, "           %s\n", describeAction(a))
		}
	}
}

// describeAction renders one action as a single line.
func describeAction(a models.Action) string {
	var s string
	switch a.Verb() {
	case models.VerbLog:
		cat := a.Category
		if !cat.Valid() {
			cat = models.CategoryInfo
		}
		s = categoryStyles[cat].Render(fmt.Sprintf("log %-7s %s", cat, a.Log))
	case models.VerbHide:
		s = "hide " + a.Hide
	case models.VerbReveal:
		s = "reveal " + a.Reveal
	case models.VerbInsert:
		label := ""
		if a.Fragment != nil {
			label = fragmentSummary(*a.Fragment)
		}
		s = fmt.Sprintf("insert into %s: %s", a.Insert, label)
	default:
		s = styleError.Render("(empty action)")
	}
	if a.Requires != "" {
		s += styleHint.Render(" [requires " + a.Requires + "]")
	}
	return s
}

func fragmentSummary(f models.Fragment) string {
	parts := []string{f.Kind}
	if f.Label != "" {
		parts = append(parts, fmt.Sprintf("%q", f.Label))
	}
	if f.Handler != "" {
		parts = append(parts, "→ "+f.Handler)
	}
	if f.Children > 0 {
		parts = append(parts, fmt.Sprintf("(+%d)", f.Children))
	}
	return strings.Join(parts, " ")
}
