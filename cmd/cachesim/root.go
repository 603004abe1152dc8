package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Cachesim simulates set-associative caches.",
	Long: `Cachesim feeds a stream of memory addresses, either generated ` +
		`from a synthetic pattern or loaded from a trace file, into a ` +
		`set-associative cache model and reports hit and miss statistics.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
