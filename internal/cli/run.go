package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/t4skforce/threatsim/internal/config"
	"github.com/t4skforce/threatsim/internal/tui"
)

var (
	runScenarioFlag string
	runHeadlessFlag bool
	runDurationFlag time.Duration
	runWatchFlag    bool
	runSeedFlag     uint64
	runThemeFlag    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play the demonstration",
	Long: `Play the demonstration in the terminal UI.

The scenario comes from --scenario, the settings file, ~/.threatsim/scenario.yaml,
or the built-in demo, in that order. When stdout is not a terminal, or with
--headless, the demo runs for --duration and prints the threat log instead.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runScenarioFlag, "scenario", "s", "", "scenario file to play")
	runCmd.Flags().BoolVar(&runHeadlessFlag, "headless", false, "print the threat log instead of starting the UI")
	runCmd.Flags().DurationVarP(&runDurationFlag, "duration", "d", 0, "headless run length (default from settings, 7s)")
	runCmd.Flags().BoolVarP(&runWatchFlag, "watch", "w", false, "restart the demo when the scenario file changes")
	runCmd.Flags().Uint64Var(&runSeedFlag, "seed", 0, "seed for the network feed")
	runCmd.Flags().StringVar(&runThemeFlag, "theme", "", "color theme: system, light or dark")
}

func runRun(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	sc, source, err := config.ResolveScenario(runScenarioFlag, settings)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	var seed *uint64
	if cmd.Flags().Changed("seed") {
		seed = &runSeedFlag
	}

	theme := settings.Appearance.Theme
	if runThemeFlag != "" {
		theme = runThemeFlag
	}
	if err := applyTheme(theme); err != nil {
		return err
	}

	headless := runHeadlessFlag || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		duration := settings.Headless.Duration
		if runDurationFlag > 0 {
			duration = runDurationFlag
		}
		closeLog, err := setupLogging(false)
		if err != nil {
			return err
		}
		defer closeLog()
		return runHeadless(cmd.Context(), cmd.OutOrStdout(), headlessOptions{
			Scenario: sc,
			Source:   source,
			Duration: duration,
			Seed:     seed,
		})
	}

	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Printf("[run] starting UI with scenario %q from %s", sc.Name, source)
	return tui.Run(tui.Options{
		Scenario: sc,
		Source:   source,
		Watch:    runWatchFlag,
		Seed:     seed,
	})
}

// setupLogging routes the standard logger. With --debug the UI logs to a
// file and headless runs log to stderr; otherwise logs are discarded.
func setupLogging(ui bool) (func(), error) {
	if !debugFlag {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if !ui {
		log.SetOutput(os.Stderr)
		return func() {}, nil
	}

	if err := config.EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	path, err := config.DebugLogFile()
	if err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "threatsim")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// applyTheme forces the adaptive color variant, or leaves detection to the
// terminal for "system".
func applyTheme(theme string) error {
	switch theme {
	case "", "system":
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		return fmt.Errorf("unknown theme %q (expected system, light or dark)", theme)
	}
	return nil
}

// scenarioSourceLabel renders where a scenario came from.
func scenarioSourceLabel(source string) string {
	if source == config.BuiltinScenario {
		return styleHint.Render("(built-in)")
	}
	return styleValue.Render(source)
}
