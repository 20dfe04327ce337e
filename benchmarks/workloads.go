package benchmarks

import (
	"io"

	"github.com/sarchlab/rv32check/harness"
	"github.com/sarchlab/rv32check/opaque"
)

// result cells written by the Fibonacci workloads, so every result is a
// real store.
var (
	fibResult1 = opaque.NewInt32(0)
	fibResult2 = opaque.NewInt32(0)
	fibResult3 = opaque.NewInt32(0)
)

// GetWorkloads returns the standard workload set.
func GetWorkloads() []Benchmark {
	return []Benchmark{
		fibonacci("fib_4", 4, fibResult1, 3),
		fibonacci("fib_6", 6, fibResult2, 8),
		fibonacci("fib_12", 12, fibResult3, 144),
		selfCheck(),
	}
}

// Fib computes the nth Fibonacci number by naive double recursion.
//
//go:noinline
func Fib(n int32) int32 {
	if n <= 1 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}

func fibonacci(name string, n int32, cell *opaque.Int32, want int64) Benchmark {
	arg := opaque.NewInt32(n)

	return Benchmark{
		Name:        name,
		Description: "Recursive Fibonacci: call and return overhead, stack traffic",
		Run: func() int64 {
			cell.Store(Fib(arg.Load()))
			return int64(cell.Load())
		},
		Expected: want,
	}
}

// selfCheck runs the baseline variant of the self-check harness. A correct
// run returns status 0.
func selfCheck() Benchmark {
	return Benchmark{
		Name:        "selfcheck_baseline",
		Description: "Full baseline self-check run: every module, every check",
		Run: func() int64 {
			config := harness.DefaultConfig()
			config.Variant = harness.VariantBaseline
			config.Output = io.Discard

			h, err := harness.NewHarness(config)
			if err != nil {
				return -1
			}
			return int64(h.Run().Status)
		},
		Expected: 0,
	}
}
