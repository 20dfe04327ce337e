package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func arithmeticModule() Module {
	return Module{
		Name:     "arithmetic",
		Category: CategoryArithmetic,
		Checks:   6,
		Run:      Arithmetic,
	}
}

// Arithmetic checks ADD, SUB, AND, OR and XOR on register operands.
func Arithmetic(r *check.Recorder) {
	a := opaque.NewInt32(10)
	b := opaque.NewInt32(5)
	result := opaque.NewInt32(0)

	result.Store(a.Load() + b.Load())
	r.Assert(result.Load() == 15, "ADD")

	result.Store(a.Load() - b.Load())
	r.Assert(result.Load() == 5, "SUB")

	result.Store(a.Load() & b.Load())
	r.Assert(result.Load() == 0, "AND")

	result.Store(a.Load() | b.Load())
	r.Assert(result.Load() == 15, "OR")

	result.Store(a.Load() ^ b.Load())
	r.Assert(result.Load() == 15, "XOR")

	// Two's complement wrap, no trap.
	maxInt := opaque.NewInt32(0x7fffffff)
	one := opaque.NewInt32(1)
	result.Store(maxInt.Load() + one.Load())
	r.Assert(result.Load() == -2147483648, "ADD overflow wraps")
}
