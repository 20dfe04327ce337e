package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func upperModule() Module {
	return Module{
		Name:     "upper",
		Category: CategoryUpper,
		Checks:   2,
		Run:      Upper,
	}
}

// Upper checks that 32-bit constants with non-zero upper bits are
// materialized correctly.
func Upper(r *check.Recorder) {
	value := opaque.NewUint32(0)

	value.Store(0x12345000)
	r.Assert(value.Load()>>12 == 0x12345, "LUI")

	value.Store(0xabcd0000)
	r.Assert(value.Load()>>16 == 0xabcd, "upper immediate")
}
