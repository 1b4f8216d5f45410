package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X ...".
var (
	CoreVersion   = "unknown"
	GolangVersion = runtime.Version()
	BuildTime     = "unknown"
)

var (
	labelColor   = color.New(color.Bold)
	versionColor = color.New(color.FgGreen, color.Bold)
)

// Versions holds version information of the binary.
type Versions struct {
	Version       string `json:"version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application",
		Run: func(cmd *cobra.Command, args []string) {
			printVersionInfo(cmd.OutOrStdout(), Versions{
				Version:       CoreVersion,
				GolangVersion: GolangVersion,
				BuildTime:     BuildTime,
			})
		},
	}
}

// printVersionInfo prints the version information of the application.
func printVersionInfo(w io.Writer, v Versions) {
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("Core Version:"), versionColor.Sprintf("v%s", v.Version))
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("Go Version:"), v.GolangVersion)
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("Build Time:"), v.BuildTime)
}
