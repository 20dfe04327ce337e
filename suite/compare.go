package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func compareModule() Module {
	return Module{
		Name:     "compare",
		Category: CategoryCompare,
		Checks:   4,
		Run:      Compare,
	}
}

// Compare checks signed and unsigned set-less-than. The all-ones pattern is
// compared both ways: unsigned it is maximal, signed it is -1.
func Compare(r *check.Recorder) {
	a := opaque.NewInt32(10)
	b := opaque.NewInt32(5)
	result := opaque.NewInt32(0)

	result.Store(setLess(a.Load() < b.Load()))
	r.Assert(result.Load() == 0, "SLT")

	result.Store(setLess(b.Load() < a.Load()))
	r.Assert(result.Load() == 1, "SLT")

	ua := opaque.NewUint32(0xffffffff)
	ub := opaque.NewUint32(5)
	result.Store(setLess(ua.Load() < ub.Load()))
	r.Assert(result.Load() == 0, "SLTU")

	result.Store(setLess(int32(ua.Load()) < int32(ub.Load())))
	r.Assert(result.Load() == 1, "SLT all-ones signed")
}

// setLess materializes a comparison as 0 or 1.
func setLess(less bool) int32 {
	if less {
		return 1
	}
	return 0
}
