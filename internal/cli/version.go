package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/t4skforce/threatsim/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%s)\n", styleBrand.Render("threatsim"), styleVersion.Render(resolveVersion()), buildinfo.Codename)
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Commit:"), buildinfo.CommitHash)
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Built:"), buildinfo.BuildDate)
		fmt.Fprintf(out, "  %s %s/%s\n", styleLabel.Render("OS/Arch:"), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Go:"), runtime.Version())
	},
}

// resolveVersion prefers the ldflags version, then the module version
// recorded by `go install`.
func resolveVersion() string {
	if buildinfo.Version != "dev" {
		return buildinfo.Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return buildinfo.Version
}
