// Package main provides the entry point for rv32check.
// rv32check is a self-checking RV32I instruction conformance harness.
//
// For the reporting CLI, use: go run ./cmd/rv32check
package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/rv32check/harness"
)

func main() {
	fmt.Println("rv32check - RV32I Self-Check Harness")
	fmt.Printf("Variant: %s\n", harness.DefaultVariant())
	fmt.Println("")
	fmt.Println("Tools:")
	fmt.Println("  ./cmd/rv32check     Run the self-check and report results")
	fmt.Println("  ./cmd/bin2verilog   Convert a program image to Verilog")
	fmt.Println("  ./cmd/benchmark     Time the workloads")

	os.Exit(harness.Run())
}
