package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func immediateModule() Module {
	return Module{
		Name:     "immediate",
		Category: CategoryImmediate,
		Checks:   7,
		Run:      Immediate,
	}
}

// Immediate repeats the arithmetic, logic and comparison checks with a
// literal second operand.
func Immediate(r *check.Recorder) {
	a := opaque.NewInt32(100)
	result := opaque.NewInt32(0)

	result.Store(a.Load() + 50)
	r.Assert(result.Load() == 150, "ADDI")

	result.Store(a.Load() & 0x0f)
	r.Assert(result.Load() == 4, "ANDI")

	result.Store(a.Load() | 0xf0)
	r.Assert(result.Load() == 0xf4, "ORI")

	result.Store(a.Load() ^ 0xff)
	r.Assert(result.Load() == 0x9b, "XORI")

	result.Store(setLess(a.Load() < 200))
	r.Assert(result.Load() == 1, "SLTI")

	result.Store(setLess(a.Load() < 50))
	r.Assert(result.Load() == 0, "SLTI")

	ua := opaque.NewUint32(100)
	result.Store(setLess(ua.Load() < 200))
	r.Assert(result.Load() == 1, "SLTIU")
}
