package harness

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"
)

// Version is the harness version reported in JSON output.
const Version = "1.0.0"

// Report is the JSON output format of a run.
type Report struct {
	// Metadata describes where and how the run happened.
	Metadata ReportMetadata `json:"metadata"`

	// Result is the outcome of the run.
	Result Result `json:"result"`

	// Summary contains the verdict in one place.
	Summary ReportSummary `json:"summary"`
}

// ReportMetadata contains information about the run.
type ReportMetadata struct {
	Timestamp string  `json:"timestamp"`
	Version   string  `json:"version"`
	GOARCH    string  `json:"goarch"`
	Variant   Variant `json:"variant"`
}

// ReportSummary contains the aggregate verdict.
type ReportSummary struct {
	TotalModules int    `json:"total_modules"`
	TotalChecks  uint32 `json:"total_checks"`
	Complete     bool   `json:"complete"`
	Verdict      string `json:"verdict"`
}

// Verdict returns "PASS" for status 0 and "FAIL" otherwise.
func (r Result) Verdict() string {
	if r.Status == 0 {
		return "PASS"
	}
	return "FAIL"
}

// Complete reports whether every defined check ran.
func (r Result) Complete() bool {
	return int(r.Passed+r.Failed) == r.Expected
}

// PrintResults outputs a result in a human-readable format.
func (h *Harness) PrintResults(r Result) {
	out := h.config.Output

	_, _ = fmt.Fprintln(out, "=== RV32I Self-Check ===")
	_, _ = fmt.Fprintf(out, "Variant: %s (%s)\n", r.Variant, runtime.GOARCH)
	_, _ = fmt.Fprintln(out, "")

	if h.config.Verbose {
		for _, m := range r.Modules {
			_, _ = fmt.Fprintf(out, "  %-12s %-28s %3d/%-3d passed\n",
				m.Name, m.Category, m.Passed, m.Checks)
		}
		_, _ = fmt.Fprintln(out, "")
	}

	for _, f := range r.Failures {
		_, _ = fmt.Fprintf(out, "  FAILED %s: %s\n", f.Module, f.Label)
	}
	if len(r.Failures) > 0 {
		_, _ = fmt.Fprintln(out, "")
	}

	_, _ = fmt.Fprintf(out, "Passed: %d\n", r.Passed)
	_, _ = fmt.Fprintf(out, "Failed: %d\n", r.Failed)
	_, _ = fmt.Fprintf(out, "Checks: %d/%d\n", r.Passed+r.Failed, r.Expected)
	_, _ = fmt.Fprintf(out, "Result: %s (status %d)\n", r.Verdict(), r.Status)
}

// PrintCSV outputs per-module results in CSV format.
func (h *Harness) PrintCSV(r Result) {
	out := h.config.Output

	_, _ = fmt.Fprintln(out, "module,category,checks,passed,failed")
	for _, m := range r.Modules {
		_, _ = fmt.Fprintf(out, "%s,%s,%d,%d,%d\n",
			m.Name, m.Category, m.Checks, m.Passed, m.Failed)
	}
}

// PrintJSON outputs a result in JSON format for automated comparison.
func (h *Harness) PrintJSON(r Result) error {
	report := Report{
		Metadata: ReportMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   Version,
			GOARCH:    runtime.GOARCH,
			Variant:   r.Variant,
		},
		Result: r,
		Summary: ReportSummary{
			TotalModules: len(r.Modules),
			TotalChecks:  r.Passed + r.Failed,
			Complete:     r.Complete(),
			Verdict:      r.Verdict(),
		},
	}

	encoder := json.NewEncoder(h.config.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
