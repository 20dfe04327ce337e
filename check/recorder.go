package check

import (
	"io"
	"log/slog"
)

// Tally is the number of passed and failed checks attributed to one module.
type Tally struct {
	Module string `json:"module"`
	Passed uint32 `json:"passed"`
	Failed uint32 `json:"failed"`
}

// Total returns Passed + Failed.
func (t Tally) Total() uint32 {
	return t.Passed + t.Failed
}

// Failure identifies a failed check by module and label.
type Failure struct {
	Module string `json:"module"`
	Label  string `json:"label"`
}

// Recorder is the assertion primitive. It records every check into its
// Counters and keeps per-module tallies for diagnostics.
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	counters *Counters
	logger   *slog.Logger

	tallies  []Tally
	current  int // index into tallies, -1 before the first Begin
	failures []Failure
}

// Option is a functional option for configuring a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger that receives one debug record per check and
// one warning per failed check.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRecorder creates a Recorder writing into counters.
func NewRecorder(counters *Counters, opts ...Option) *Recorder {
	r := &Recorder{
		counters: counters,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		current:  -1,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Counters returns the counter state the recorder writes into.
func (r *Recorder) Counters() *Counters {
	return r.counters
}

// Begin attributes the checks that follow to module.
func (r *Recorder) Begin(module string) {
	r.tallies = append(r.tallies, Tally{Module: module})
	r.current = len(r.tallies) - 1
	r.logger.Debug("module begin", "module", module)
}

// Assert records one check. A true condition increments the passed counter;
// a false one increments the failed counter and sets the aggregate flag.
// It never returns an error and never stops the caller.
//
//go:noinline
func (r *Recorder) Assert(cond bool, label string) {
	module := r.module()

	if cond {
		r.counters.pass()
		if r.current >= 0 {
			r.tallies[r.current].Passed++
		}
		r.logger.Debug("check passed", "module", module, "label", label)
		return
	}

	r.counters.fail()
	if r.current >= 0 {
		r.tallies[r.current].Failed++
	}
	r.failures = append(r.failures, Failure{Module: module, Label: label})
	r.logger.Warn("check failed", "module", module, "label", label)
}

// Tallies returns the per-module tallies in the order modules began.
func (r *Recorder) Tallies() []Tally {
	out := make([]Tally, len(r.tallies))
	copy(out, r.tallies)
	return out
}

// Failures returns the failed checks in the order they were recorded.
func (r *Recorder) Failures() []Failure {
	out := make([]Failure, len(r.failures))
	copy(out, r.failures)
	return out
}

// Reset clears the counters, tallies and failures.
func (r *Recorder) Reset() {
	r.counters.Reset()
	r.tallies = r.tallies[:0]
	r.failures = r.failures[:0]
	r.current = -1
}

func (r *Recorder) module() string {
	if r.current < 0 {
		return ""
	}
	return r.tallies[r.current].Module
}
