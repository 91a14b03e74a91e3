package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/builtin"
	"github.com/weftlabs/weft/middleware"
	"github.com/weftlabs/weft/yaml"
)

var (
	runInputs    []string
	runInputFile string
	runJSON      bool
	runJobs      int
	runDryRun    bool
)

var runCmd = &cobra.Command{
	Use:   "run <chain.yaml>",
	Short: "Execute a chain from a YAML definition",
	Long: `Run loads a chain definition, composes it from the builtin node
catalog, and feeds it one input per invocation. Inputs come from --input
flags, an input file (one input per line), or stdin.

Each input runs through its own chain instance, so stateful nodes start
fresh per input. With --jobs > 1 inputs are processed concurrently, one
chain instance per input; a single chain still executes its stages
strictly sequentially.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChain(args[0])
	},
}

func init() {
	runCmd.Flags().StringArrayVarP(&runInputs, "input", "i", nil, "Input value (repeatable)")
	runCmd.Flags().StringVar(&runInputFile, "input-file", "", "File with one input per line")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Parse each input as JSON")
	runCmd.Flags().IntVar(&runJobs, "jobs", 1, "Number of inputs processed concurrently")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Validate and compose without executing")

	rootCmd.AddCommand(runCmd)
}

func runChain(path string) error {
	def, err := loadDefinition(path)
	if err != nil {
		return err
	}

	logger := newLogger(verbose)
	if verbose {
		logger.Debug("loaded chain definition",
			"name", def.Name,
			"stages", len(def.Stages))
	}

	// newInstance composes a fresh chain so per-node state never leaks
	// between inputs.
	newInstance := func() (weft.Dynamic, error) {
		loader := yaml.NewLoader()
		builtin.RegisterAll(loader, verbose)
		chain, err := loader.LoadDefinition(def)
		if err != nil {
			return nil, fmt.Errorf("compose chain: %w", err)
		}
		if verbose {
			chain = middleware.Apply(chain, middleware.Logging[any, any](def.Name, logger))
		}
		return chain, nil
	}

	if runDryRun {
		if _, err := newInstance(); err != nil {
			return err
		}
		fmt.Println("Chain composition successful (dry run)")
		return nil
	}

	inputs, err := collectInputs()
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs: pass --input, --input-file, or pipe stdin")
	}

	results := make([]any, len(inputs))
	if runJobs > 1 {
		var g errgroup.Group
		g.SetLimit(runJobs)
		for i, input := range inputs {
			i, input := i, input
			g.Go(func() error {
				chain, err := newInstance()
				if err != nil {
					return err
				}
				results[i] = chain.Run(input)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for i, input := range inputs {
			chain, err := newInstance()
			if err != nil {
				return err
			}
			results[i] = chain.Run(input)
		}
	}

	return printResults(os.Stdout, results)
}

// loadDefinition reads a definition file, schema-checks the raw document,
// and parses it.
func loadDefinition(path string) (*yaml.ChainDefinition, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	data, err := os.ReadFile(absPath) // #nosec G304 - user-provided chain file
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if err := yaml.ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	def, err := yaml.NewParser().ParseString(string(data))
	if err != nil {
		return nil, err
	}
	return def, nil
}

func collectInputs() ([]any, error) {
	var raw []string

	switch {
	case len(runInputs) > 0:
		raw = runInputs
	case runInputFile != "":
		file, err := os.Open(runInputFile) // #nosec G304 - user-provided input file
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer func() { _ = file.Close() }()
		raw = scanLines(file)
	default:
		stat, err := os.Stdin.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			raw = scanLines(os.Stdin)
		}
	}

	return parseInputs(raw, runJSON)
}

// parseInputs turns raw input lines into chain inputs, decoding each line as
// JSON when asJSON is set.
func parseInputs(raw []string, asJSON bool) ([]any, error) {
	inputs := make([]any, 0, len(raw))
	for _, line := range raw {
		if asJSON {
			var v any
			if err := json.Unmarshal([]byte(line), &v); err != nil {
				return nil, fmt.Errorf("parse input %q: %w", line, err)
			}
			inputs = append(inputs, v)
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, nil
}

// scanLines reads non-empty lines, trimming trailing carriage returns so
// CRLF input files behave like LF ones.
func scanLines(r io.Reader) []string {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// printResults writes one result per input in the selected output format.
// Text mode prints strings raw and JSON-encodes everything else.
func printResults(w io.Writer, results []any) error {
	switch output {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case "yaml":
		data, err := goyaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil
	}

	for _, result := range results {
		switch v := result.(type) {
		case string:
			fmt.Fprintln(w, v)
		default:
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("marshal result: %w", err)
			}
			fmt.Fprintln(w, string(data))
		}
	}
	return nil
}
