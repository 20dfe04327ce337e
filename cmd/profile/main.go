// Package main provides a profiling wrapper that runs the self-check harness
// repeatedly under pprof to find where a run spends its time.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarchlab/rv32check/harness"
)

type options struct {
	variant    string
	runs       int
	cpuProfile string
	memProfile string
	duration   time.Duration
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile repeated self-check runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, opts)
		},
	}

	cmd.SetOut(stdout)

	cmd.Flags().StringVar(&opts.variant, "variant", string(harness.DefaultVariant()), "module set to run (baseline|forced)")
	cmd.Flags().IntVar(&opts.runs, "runs", 10000, "number of harness runs")
	cmd.Flags().StringVar(&opts.cpuProfile, "cpuprofile", "", "write cpu profile to file")
	cmd.Flags().StringVar(&opts.memProfile, "memprofile", "", "write memory profile to file")
	cmd.Flags().DurationVar(&opts.duration, "duration", 30*time.Second, "max duration to run")

	return cmd
}

func run(stdout io.Writer, opts *options) error {
	config := harness.DefaultConfig()
	config.Variant = harness.Variant(opts.variant)
	config.Output = io.Discard

	h, err := harness.NewHarness(config)
	if err != nil {
		return err
	}

	// Start CPU profiling if requested
	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			return fmt.Errorf("error creating CPU profile: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("error starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	_, _ = fmt.Fprintf(stdout, "Variant: %s\n", config.Variant)
	_, _ = fmt.Fprintf(stdout, "Modules: %d\n", len(h.ModuleSet()))

	start := time.Now()
	deadline := start.Add(opts.duration)

	var (
		completed int
		failures  int
		last      harness.Result
	)
	for completed < opts.runs {
		if time.Now().After(deadline) {
			_, _ = fmt.Fprintf(stdout, "\nTimeout reached after %v - stopping\n", opts.duration)
			break
		}

		last = h.Run()
		if last.Status != 0 {
			failures++
		}
		completed++
	}

	elapsed := time.Since(start)

	// Write memory profile if requested
	if opts.memProfile != "" {
		f, err := os.Create(opts.memProfile)
		if err != nil {
			return fmt.Errorf("error creating memory profile: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("error writing memory profile: %w", err)
		}
	}

	checks := uint64(completed) * uint64(last.Passed+last.Failed)

	_, _ = fmt.Fprintf(stdout, "\nProfiling Results:\n")
	_, _ = fmt.Fprintf(stdout, "Runs completed: %d\n", completed)
	_, _ = fmt.Fprintf(stdout, "Failed runs: %d\n", failures)
	_, _ = fmt.Fprintf(stdout, "Checks executed: %d\n", checks)
	_, _ = fmt.Fprintf(stdout, "Elapsed time: %v\n", elapsed)
	if checks > 0 && elapsed > 0 {
		_, _ = fmt.Fprintf(stdout, "Checks/second: %.0f\n", float64(checks)/elapsed.Seconds())
	}

	return nil
}
