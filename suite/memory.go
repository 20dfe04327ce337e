package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func memoryModule() Module {
	return Module{
		Name:     "memory",
		Category: CategoryMemory,
		Checks:   8,
		Run:      Memory,
	}
}

// Memory checks word loads and stores, and byte and halfword loads with
// both sign and zero extension of the same stored value.
func Memory(r *check.Recorder) {
	words := opaque.NewMemory(8 * 4)
	for i := uint32(0); i < 8; i++ {
		words.Write32(i*4, i)
	}

	value := opaque.NewUint32(0)
	value.Store(words.Read32(3 * 4))
	r.Assert(value.Load() == 3, "LW")

	words.Write32(0, 42)
	r.Assert(words.Read32(0) == 42, "SW")

	// {-1, 0, 127, -128}
	bytes := opaque.NewMemory(4)
	bytes.Write8(0, 0xff)
	bytes.Write8(1, 0x00)
	bytes.Write8(2, 0x7f)
	bytes.Write8(3, 0x80)

	byteVal := opaque.NewInt32(0)
	byteVal.Store(bytes.Read8Signed(0))
	r.Assert(byteVal.Load() == -1, "LB sign extend")

	byteVal.Store(int32(bytes.Read8(0)))
	r.Assert(byteVal.Load() == 255, "LBU zero extend")

	// {-1, 0, 32767, -32768}
	halves := opaque.NewMemory(4 * 2)
	halves.Write16(0, 0xffff)
	halves.Write16(2, 0x0000)
	halves.Write16(4, 0x7fff)
	halves.Write16(6, 0x8000)

	halfVal := opaque.NewInt32(0)
	halfVal.Store(halves.Read16Signed(0))
	r.Assert(halfVal.Load() == -1, "LH sign extend")

	halfVal.Store(int32(halves.Read16(0)))
	r.Assert(halfVal.Load() == 65535, "LHU zero extend")

	bytes.Write8(1, uint8(opaque.Uint32Of(0x80)))
	byteVal.Store(bytes.Read8Signed(1))
	r.Assert(byteVal.Load() == -128, "SB then LB")

	halves.Write16(2, uint16(opaque.Uint32Of(0x8000)))
	halfVal.Store(int32(halves.Read16(2)))
	r.Assert(halfVal.Load() == 32768, "SH then LHU")
}
