// Command rv32check runs the RV32I self-check harness and exits with its
// final status: 0 if every check passed, 1 if any check failed.
//
// It takes no arguments, flags or environment variables. Build it for the
// target and run it there:
//
//	GOARCH=riscv64 go build ./cmd/rv32check
//
// On riscv64 the forced variant runs, which adds the modules that issue
// byte/halfword loads and stores, register shifts, LUI and AUIPC directly.
// Elsewhere only the baseline variant is available.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/rv32check/harness"
)

// exitHarnessError is the exit status when the harness cannot be built.
const exitHarnessError = 2

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	config := harness.DefaultConfig()
	config.Output = stdout

	h, err := harness.NewHarness(config)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitHarnessError
	}

	result := h.Run()
	h.PrintResults(result)

	return result.Status
}
