package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags.
	verbose bool
	output  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Typed node-composition chains",
	Long: `Weft composes typed processing nodes into linear and fan-out
transformation chains. This command loads chain definitions from YAML
files and runs them against inputs.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&output, "output", "text", "Output format (text, json, yaml)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
