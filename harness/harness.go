// Package harness provides the test orchestrator of the self-check harness.
//
// A Harness resets its counter state, runs every test module once in a
// fixed order, and derives the final status: 0 if every check passed, 1
// otherwise. The final status is the harness's only committed output;
// reports are diagnostics.
package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/raw"
	"github.com/sarchlab/rv32check/suite"
)

// Variant selects the module set of a run.
type Variant string

const (
	// VariantBaseline runs the modules expressed in plain Go.
	VariantBaseline Variant = "baseline"

	// VariantForced runs the baseline modules plus the modules that issue
	// instructions directly. It needs raw.Available.
	VariantForced Variant = "forced"
)

var (
	// ErrUnknownVariant is returned for a variant name the harness does not
	// define.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrVariantUnsupported is returned for a variant this build cannot run.
	ErrVariantUnsupported = errors.New("variant unsupported on this architecture")
)

// DefaultVariant returns the richest variant this build can run.
func DefaultVariant() Variant {
	if raw.Available {
		return VariantForced
	}
	return VariantBaseline
}

// Modules returns the module set of v.
func Modules(v Variant) ([]suite.Module, error) {
	switch v {
	case VariantBaseline:
		return suite.GetBaselineModules(), nil
	case VariantForced:
		if !raw.Available {
			return nil, fmt.Errorf("%s: %w", v, ErrVariantUnsupported)
		}
		return append(suite.GetBaselineModules(), suite.GetForcedModules()...), nil
	default:
		return nil, fmt.Errorf("%q: %w", v, ErrUnknownVariant)
	}
}

// Config configures a Harness.
type Config struct {
	// Variant selects the module set.
	Variant Variant

	// Modules replaces the variant's module set when non-nil.
	Modules []suite.Module

	// Output is where reports are written (default: os.Stdout).
	Output io.Writer

	// Verbose adds per-module lines to the text report.
	Verbose bool

	// Logger receives per-check diagnostics (default: discarded).
	Logger *slog.Logger
}

// DefaultConfig returns a configuration for the default variant.
func DefaultConfig() Config {
	return Config{
		Variant: DefaultVariant(),
		Output:  os.Stdout,
		Verbose: false,
	}
}

// ModuleResult is the outcome of one module in a run.
type ModuleResult struct {
	Name     string         `json:"name"`
	Category suite.Category `json:"category"`
	Checks   int            `json:"checks"`
	Passed   uint32         `json:"passed"`
	Failed   uint32         `json:"failed"`
}

// Result is the outcome of a run.
type Result struct {
	// Variant is the module set that ran.
	Variant Variant `json:"variant"`

	// Passed and Failed are the final counter values.
	Passed uint32 `json:"passed"`
	Failed uint32 `json:"failed"`

	// Expected is the number of checks the module set defines.
	Expected int `json:"expected"`

	// Status is 0 if no check failed, 1 otherwise.
	Status int `json:"status"`

	// Modules holds per-module tallies in run order.
	Modules []ModuleResult `json:"modules"`

	// Failures lists the failed checks in the order they were recorded.
	Failures []check.Failure `json:"failures"`

	// WallTime is the time taken by the run.
	WallTime time.Duration `json:"wall_time_ns"`
}

// Harness runs test modules and derives the final status.
type Harness struct {
	config   Config
	modules  []suite.Module
	counters check.Counters
	recorder *check.Recorder
}

// NewHarness creates a harness for config.
func NewHarness(config Config) (*Harness, error) {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Variant == "" {
		config.Variant = DefaultVariant()
	}

	modules := config.Modules
	if modules == nil {
		var err error
		modules, err = Modules(config.Variant)
		if err != nil {
			return nil, err
		}
	}

	h := &Harness{
		config:  config,
		modules: modules,
	}

	var opts []check.Option
	if config.Logger != nil {
		opts = append(opts, check.WithLogger(config.Logger))
	}
	h.recorder = check.NewRecorder(&h.counters, opts...)

	return h, nil
}

// Counters returns the harness's counter state.
func (h *Harness) Counters() *check.Counters {
	return &h.counters
}

// ModuleSet returns the modules the harness runs, in order.
func (h *Harness) ModuleSet() []suite.Module {
	out := make([]suite.Module, len(h.modules))
	copy(out, h.modules)
	return out
}

// Run resets the counter state, runs every module exactly once in order and
// returns the result. Failed checks never stop the run.
func (h *Harness) Run() Result {
	h.recorder.Reset()

	start := time.Now()
	for _, m := range h.modules {
		h.recorder.Begin(m.Name)
		m.Run(h.recorder)
	}
	wallTime := time.Since(start)

	tallies := h.recorder.Tallies()
	modules := make([]ModuleResult, len(h.modules))
	for i, m := range h.modules {
		modules[i] = ModuleResult{
			Name:     m.Name,
			Category: m.Category,
			Checks:   m.Checks,
			Passed:   tallies[i].Passed,
			Failed:   tallies[i].Failed,
		}
	}

	return Result{
		Variant:  h.config.Variant,
		Passed:   h.counters.Passed(),
		Failed:   h.counters.Failed(),
		Expected: suite.TotalChecks(h.modules),
		Status:   h.counters.Status(),
		Modules:  modules,
		Failures: h.recorder.Failures(),
		WallTime: wallTime,
	}
}

// Run runs the default variant with reports discarded and returns the final
// status.
func Run() int {
	config := DefaultConfig()
	config.Output = io.Discard

	h, err := NewHarness(config)
	if err != nil {
		return 1
	}
	return h.Run().Status
}
