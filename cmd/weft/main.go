// Command weft loads chain definitions from YAML files and runs them over
// inputs supplied on the command line or stdin.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
