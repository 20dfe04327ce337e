package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func shiftModule() Module {
	return Module{
		Name:     "shift",
		Category: CategoryShift,
		Checks:   4,
		Run:      Shift,
	}
}

// Shift checks logical left, logical right and arithmetic right shifts. The
// arithmetic shift runs on a negative operand, and the same bit pattern is
// also shifted logically so the two results must diverge.
func Shift(r *check.Recorder) {
	a := opaque.NewInt32(10)
	amount := opaque.NewUint32(2)
	result := opaque.NewInt32(0)

	result.Store(a.Load() << amount.Load())
	r.Assert(result.Load() == 40, "SLL")

	result.Store(int32(uint32(a.Load()) >> amount.Load()))
	r.Assert(result.Load() == 2, "SRL")

	neg := opaque.NewInt32(-16)
	result.Store(neg.Load() >> amount.Load())
	r.Assert(result.Load() == -4, "SRA")

	pattern := opaque.NewUint32(0)
	pattern.Store(uint32(neg.Load()) >> amount.Load())
	r.Assert(pattern.Load() == 1073741820, "SRL negative pattern")
}
