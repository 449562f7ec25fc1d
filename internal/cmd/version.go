package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Narturebelle/Narturebelle/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	info := version.Current()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "NartureBelle landing\n")
	fmt.Fprintf(out, "  Version:    %s\n", info.Version)
	fmt.Fprintf(out, "  Commit:     %s\n", info.GitCommit)
	fmt.Fprintf(out, "  Built:      %s\n", info.BuildTime)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
