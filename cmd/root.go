package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "runway-sim",
	Short: "Monte-Carlo simulator of airport landings on one or two runways",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)
	registerDayFlags(dayCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(dayCmd)
}
