// Package benchmarks provides wall-clock timing of the harness workloads.
package benchmarks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// BenchmarkResult holds the timing results for a single benchmark run.
type BenchmarkResult struct {
	// Name identifies the benchmark
	Name string `json:"name"`

	// Description explains what the benchmark measures
	Description string `json:"description"`

	// Iterations is how many times the workload ran
	Iterations int `json:"iterations"`

	// Value is the workload's result from the last iteration
	Value int64 `json:"value"`

	// Expected is the value the workload must produce
	Expected int64 `json:"expected"`

	// Valid reports whether every iteration produced Expected
	Valid bool `json:"valid"`

	// WallTime is the total time taken by all iterations
	WallTime time.Duration `json:"wall_time_ns"`

	// PerIteration is WallTime divided by Iterations
	PerIteration time.Duration `json:"per_iteration_ns"`
}

// Benchmark defines a single workload.
type Benchmark struct {
	// Name identifies the benchmark
	Name string

	// Description explains what the benchmark measures
	Description string

	// Run executes the workload once and returns its result value
	Run func() int64

	// Expected is the result value of a correct run (for validation)
	Expected int64
}

// HarnessConfig configures the benchmark harness.
type HarnessConfig struct {
	// Iterations is how many times each workload runs (minimum 1)
	Iterations int

	// Output is where to write results (default: os.Stdout)
	Output io.Writer

	// Verbose enables detailed output
	Verbose bool
}

// DefaultConfig returns a default harness configuration.
func DefaultConfig() HarnessConfig {
	return HarnessConfig{
		Iterations: 100,
		Output:     os.Stdout,
		Verbose:    false,
	}
}

// Harness runs timing benchmarks and reports results.
type Harness struct {
	config     HarnessConfig
	benchmarks []Benchmark
}

// NewHarness creates a new benchmark harness.
func NewHarness(config HarnessConfig) *Harness {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Iterations < 1 {
		config.Iterations = 1
	}
	return &Harness{
		config:     config,
		benchmarks: []Benchmark{},
	}
}

// AddBenchmark adds a benchmark to the harness.
func (h *Harness) AddBenchmark(b Benchmark) {
	h.benchmarks = append(h.benchmarks, b)
}

// AddBenchmarks adds multiple benchmarks to the harness.
func (h *Harness) AddBenchmarks(benchmarks []Benchmark) {
	h.benchmarks = append(h.benchmarks, benchmarks...)
}

// RunAll executes all benchmarks and returns results.
func (h *Harness) RunAll() []BenchmarkResult {
	results := make([]BenchmarkResult, 0, len(h.benchmarks))

	for _, bench := range h.benchmarks {
		results = append(results, h.runBenchmark(bench))
	}

	return results
}

func (h *Harness) runBenchmark(bench Benchmark) BenchmarkResult {
	result := BenchmarkResult{
		Name:        bench.Name,
		Description: bench.Description,
		Iterations:  h.config.Iterations,
		Expected:    bench.Expected,
		Valid:       true,
	}

	start := time.Now()
	for i := 0; i < h.config.Iterations; i++ {
		result.Value = bench.Run()
		if result.Value != bench.Expected {
			result.Valid = false
		}
	}
	result.WallTime = time.Since(start)
	result.PerIteration = result.WallTime / time.Duration(h.config.Iterations)

	return result
}

// PrintResults outputs benchmark results in a human-readable format.
func (h *Harness) PrintResults(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output, "=== RV32I Workload Benchmark Results ===")
	_, _ = fmt.Fprintln(h.config.Output, "")

	for _, r := range results {
		_, _ = fmt.Fprintf(h.config.Output, "Benchmark: %s\n", r.Name)
		if h.config.Verbose {
			_, _ = fmt.Fprintf(h.config.Output, "  Description: %s\n", r.Description)
		}
		_, _ = fmt.Fprintf(h.config.Output, "  Value:         %d (expected %d)\n", r.Value, r.Expected)
		_, _ = fmt.Fprintf(h.config.Output, "  Valid:         %v\n", r.Valid)
		_, _ = fmt.Fprintf(h.config.Output, "  Iterations:    %d\n", r.Iterations)
		_, _ = fmt.Fprintf(h.config.Output, "  Wall Time:     %v\n", r.WallTime)
		_, _ = fmt.Fprintf(h.config.Output, "  Per Iteration: %v\n", r.PerIteration)
		_, _ = fmt.Fprintln(h.config.Output, "")
	}
}

// PrintCSV outputs benchmark results in CSV format for easy comparison.
func (h *Harness) PrintCSV(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output,
		"name,iterations,value,expected,valid,wall_time_ns,per_iteration_ns")

	for _, r := range results {
		_, _ = fmt.Fprintf(h.config.Output, "%s,%d,%d,%d,%t,%d,%d\n",
			r.Name,
			r.Iterations,
			r.Value,
			r.Expected,
			r.Valid,
			r.WallTime.Nanoseconds(),
			r.PerIteration.Nanoseconds(),
		)
	}
}

// PrintJSON outputs benchmark results as an indented JSON array.
func (h *Harness) PrintJSON(results []BenchmarkResult) error {
	encoder := json.NewEncoder(h.config.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// AllValid reports whether every result produced its expected value.
func AllValid(results []BenchmarkResult) bool {
	for _, r := range results {
		if !r.Valid {
			return false
		}
	}
	return true
}
