// Package cli implements the threatsim CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "threatsim",
	Short: "Play a scripted web-threat demonstration in the terminal",
	Long: `Threatsim plays a timed demonstration of common web attacks against a
mock page: hidden CSS injection, prompt injection, clickjacking and a
phishing modal, with a live threat log and a simulated network feed.

Nothing leaves the machine. Submitted credentials are discarded.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug log to ~/.threatsim/logs")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(versionCmd)
}
