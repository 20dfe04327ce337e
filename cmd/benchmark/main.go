// Command benchmark runs the workload timing harness.
//
// Usage:
//
//	go run ./cmd/benchmark [flags]
//
// Flags:
//
//	--csv         Output results in CSV format (default: human-readable)
//	--json        Output results in JSON format
//	--iterations  Iterations per workload (default: 100)
//
// Example:
//
//	# Output CSV for spreadsheet comparison
//	go run ./cmd/benchmark --csv > results.csv
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/rv32check/benchmarks"
)

type options struct {
	csv        bool
	json       bool
	iterations int
	verbose    bool
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Time the self-check workloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.csv && opts.json {
				return errors.New("--csv and --json are mutually exclusive")
			}
			return run(stdout, opts)
		},
	}

	cmd.SetOut(stdout)

	defaults := benchmarks.DefaultConfig()
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "output results in CSV format")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output results in JSON format")
	cmd.Flags().IntVar(&opts.iterations, "iterations", defaults.Iterations, "iterations per workload")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func run(stdout io.Writer, opts *options) error {
	config := benchmarks.DefaultConfig()
	config.Iterations = opts.iterations
	config.Output = stdout
	config.Verbose = opts.verbose

	harness := benchmarks.NewHarness(config)
	harness.AddBenchmarks(benchmarks.GetWorkloads())

	if !opts.csv && !opts.json {
		_, _ = fmt.Fprintln(stdout, "RV32I Workload Benchmark Harness")
		_, _ = fmt.Fprintln(stdout, "================================")
		_, _ = fmt.Fprintf(stdout, "Iterations: %d\n", opts.iterations)
		_, _ = fmt.Fprintln(stdout, "")
	}

	results := harness.RunAll()

	switch {
	case opts.csv:
		harness.PrintCSV(results)
	case opts.json:
		if err := harness.PrintJSON(results); err != nil {
			return err
		}
	default:
		harness.PrintResults(results)
	}

	if !benchmarks.AllValid(results) {
		return errors.New("one or more workloads produced an unexpected value")
	}
	return nil
}
