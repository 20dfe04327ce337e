// Package suite provides the instruction-category test modules of the
// self-check harness.
//
// Each module is an independent, order-insensitive sequence of checks for
// one semantic category. Operands and results live in opaque cells so every
// check depends on the operation it is meant to verify, and every check
// always runs: a failure is recorded and the module carries on.
package suite

import "github.com/sarchlab/rv32check/check"

// Category names the instruction-semantics category a module covers.
type Category string

// Instruction categories.
const (
	CategoryArithmetic Category = "arithmetic/logic"
	CategoryShift      Category = "shift"
	CategoryCompare    Category = "comparison"
	CategoryMemory     Category = "memory load/store"
	CategoryControl    Category = "control transfer"
	CategoryIteration  Category = "iteration"
	CategoryCall       Category = "calls/recursion"
	CategoryImmediate  Category = "immediate forms"
	CategoryUpper      Category = "upper immediate/pc-relative"
	CategoryForced     Category = "narrow/shift forcing"
)

// Module is one instruction-category test module.
type Module struct {
	// Name identifies the module in reports.
	Name string

	// Category is the semantic category the module covers.
	Category Category

	// Checks is the number of checks Run records.
	Checks int

	// Run records the module's checks.
	Run func(r *check.Recorder)
}

// GetBaselineModules returns the modules expressed in plain Go, in run
// order.
func GetBaselineModules() []Module {
	return []Module{
		arithmeticModule(),
		shiftModule(),
		compareModule(),
		memoryModule(),
		branchModule(),
		loopModule(),
		callModule(),
		immediateModule(),
		upperModule(),
		jumpModule(),
	}
}

// GetForcedModules returns the modules that issue instructions through the
// raw package. They are meaningful only when raw.Available is true.
func GetForcedModules() []Module {
	return []Module{
		forcedModule(),
		pcRelModule(),
	}
}

// TotalChecks returns the number of checks the modules record in one run.
func TotalChecks(modules []Module) int {
	total := 0
	for _, m := range modules {
		total += m.Checks
	}
	return total
}
