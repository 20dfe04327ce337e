package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
	"github.com/sarchlab/rv32check/raw"
)

func pcRelModule() Module {
	return Module{
		Name:     "pcrel",
		Category: CategoryUpper,
		Checks:   3,
		Run:      PCRel,
	}
}

// PCRel checks LUI and AUIPC. Two consecutive AUIPC captures must differ by
// exactly one instruction width, which no constant-folded value would.
func PCRel(r *check.Recorder) {
	value := opaque.NewUint32(0)
	value.Store(raw.LoadUpper())
	r.Assert(value.Load() == raw.UpperImmediate<<12, "LUI")

	first, second := raw.PCPair()
	stride := opaque.NewUint32(uint32(second - first))
	r.Assert(stride.Load() == raw.InstructionWidth, "AUIPC stride")
	r.Assert(opaque.Bool(first != 0), "AUIPC non-zero")
}
