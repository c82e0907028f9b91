package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/hooknotify/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "hooknotify version %s\n", build.Version)
		fmt.Fprintf(out, "Built from commit: %s\n", build.Commit)
		fmt.Fprintf(out, "Build date: %s\n", build.BuildDate)
		fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		if build.IsDevBuild() {
			fmt.Fprintln(out, "Development build")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
