package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
	"github.com/sarchlab/rv32check/raw"
)

func forcedModule() Module {
	return Module{
		Name:     "forced",
		Category: CategoryForced,
		Checks:   10,
		Run:      Forced,
	}
}

// Forced issues byte and halfword loads and stores and register-operand
// shifts directly, so these instruction forms are covered even where the
// compiler would select something else for equivalent Go.
func Forced(r *check.Recorder) {
	mem := opaque.NewMemory(16)
	mem.Write8(0, 0xff)
	mem.Write16(2, 0xffff)

	result := opaque.NewInt32(0)
	uresult := opaque.NewUint32(0)

	result.Store(raw.LoadByte(mem.Ptr8(0)))
	r.Assert(result.Load() == -1, "LB")

	uresult.Store(raw.LoadByteU(mem.Ptr8(0)))
	r.Assert(uresult.Load() == 255, "LBU")

	result.Store(raw.LoadHalf(mem.Ptr16(2)))
	r.Assert(result.Load() == -1, "LH")

	uresult.Store(raw.LoadHalfU(mem.Ptr16(2)))
	r.Assert(uresult.Load() == 65535, "LHU")

	raw.StoreByte(mem.Ptr8(4), opaque.Uint32Of(0x80))
	r.Assert(mem.Read8(4) == 0x80, "SB")

	result.Store(raw.LoadByte(mem.Ptr8(4)))
	r.Assert(result.Load() == -128, "SB then LB")

	raw.StoreHalf(mem.Ptr16(6), opaque.Uint32Of(0x8000))
	r.Assert(mem.Read16(6) == 0x8000, "SH")

	a := opaque.NewUint32(10)
	amount := opaque.NewUint32(2)

	uresult.Store(raw.ShiftLeft(a.Load(), amount.Load()))
	r.Assert(uresult.Load() == 40, "SLL")

	uresult.Store(raw.ShiftRight(a.Load(), amount.Load()))
	r.Assert(uresult.Load() == 2, "SRL")

	neg := opaque.NewInt32(-16)
	result.Store(raw.ShiftRightArith(neg.Load(), amount.Load()))
	r.Assert(result.Load() == -4, "SRA")
}
