package cimatrix

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/remotecc/cimatrix/pkg/matrix"
	"github.com/remotecc/cimatrix/pkg/models"
	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Lists the known CMake and GCC versions",
	Long:  "Lists the known CMake and GCC versions. Enabled versions are shown in green, disabled ones in red.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersions(cmd.OutOrStdout(), "cmake", matrix.CMakeVersions())
		printVersions(cmd.OutOrStdout(), "gcc", matrix.GCCVersions())
	},
}

func printVersions(w io.Writer, title string, versions models.VersionList) {
	enabled := color.New(color.FgGreen)
	disabled := color.New(color.FgRed)

	fmt.Fprintf(w, "%s (%d of %d enabled):\n", title, len(versions.Enabled()), len(versions))
	for _, v := range versions {
		if v.Enabled {
			enabled.Fprintf(w, "  + %s\n", v.Name)
		} else {
			disabled.Fprintf(w, "  - %s (disabled)\n", v.Name)
		}
	}
}
