package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <chain.yaml>",
	Short: "Validate a chain definition without running it",
	Long: `Validate checks a chain definition file against the definition
schema and the structural rules (exactly one of node or fan_out per
stage, fan-out width within bounds). Node types are not resolved; use
"run --dry-run" to also verify composition against the node catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loadDefinition(args[0])
		if err != nil {
			return err
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid definition: %w", err)
		}

		fmt.Printf("Valid: %s (%d stages)\n", def.Name, len(def.Stages))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
