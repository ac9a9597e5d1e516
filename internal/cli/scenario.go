package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/t4skforce/threatsim/internal/config"
	"github.com/t4skforce/threatsim/internal/models"
)

var (
	scenarioInitForce bool
	scenarioShowFlag  string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage scenario files",
}

var scenarioInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in scenario to a file for editing",
	Long: `Write the built-in scenario to a file for editing.

Without a path the scenario is written to ~/.threatsim/scenario.yaml, which
run and timeline pick up automatically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScenarioInit,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective scenario as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		sc, source, err := config.ResolveScenario(scenarioShowFlag, settings)
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
		return writeScenarioYAML(cmd.OutOrStdout(), sc, source)
	},
}

var scenarioValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateScenarioFile(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	scenarioInitCmd.Flags().BoolVarP(&scenarioInitForce, "force", "f", false, "overwrite an existing file")
	scenarioShowCmd.Flags().StringVarP(&scenarioShowFlag, "scenario", "s", "", "scenario file")

	scenarioCmd.AddCommand(scenarioInitCmd)
	scenarioCmd.AddCommand(scenarioShowCmd)
	scenarioCmd.AddCommand(scenarioValidateCmd)
}

func runScenarioInit(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		if err := config.EnsureGlobalDir(); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		p, err := config.GlobalScenarioFile()
		if err != nil {
			return err
		}
		path = p
	}
	return initScenarioFile(cmd.OutOrStdout(), path, scenarioInitForce)
}

func initScenarioFile(w io.Writer, path string, force bool) error {
	if config.FileExists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveScenario(path, models.NewScenario()); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}
	fmt.Fprintf(w, "%s Wrote %s\n", styleSuccess.Render("✓"), path)
	return nil
}

func writeScenarioYAML(w io.Writer, sc *models.Scenario, source string) error {
	fmt.Fprintf(w, "# source: %s\n", source)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}
	return enc.Close()
}

func validateScenarioFile(w io.Writer, path string) error {
	sc, err := config.LoadScenario(path)
	if err != nil {
		if errors.Is(err, models.ErrInvalidScenario) {
			fmt.Fprintf(w, "%s %v\n", styleError.Render("✗"), err)
		}
		return err
	}
	fmt.Fprintf(w, "%s %s: %q, %d beats, %d feed messages\n",
		styleSuccess.Render("✓"), path, sc.Name, len(sc.Beats), len(sc.Feed.Messages))
	return nil
}
