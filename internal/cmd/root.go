package cmd

import (
	"github.com/spf13/cobra"
)

var envFiles []string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "landing",
	Short: "NartureBelle landing site",
	Long: `Serves the NartureBelle pregnancy-care landing page.

Configuration comes from the environment. .env and .env.local in the
working directory are loaded first when present; --env-file adds more.`,
	SilenceUsage: true,
}

// NewRootCommand returns the root command
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "additional .env files to load (later files win)")
}
