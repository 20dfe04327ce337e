//go:build riscv64

package raw

// Available reports whether this build issues instructions directly.
const Available = true

// LoadByte issues LB on *p.
//
//go:noescape
func LoadByte(p *byte) int32

// LoadByteU issues LBU on *p.
//
//go:noescape
func LoadByteU(p *byte) uint32

// LoadHalf issues LH on *p.
//
//go:noescape
func LoadHalf(p *uint16) int32

// LoadHalfU issues LHU on *p.
//
//go:noescape
func LoadHalfU(p *uint16) uint32

// StoreByte issues SB of the low byte of v to *p.
//
//go:noescape
func StoreByte(p *byte, v uint32)

// StoreHalf issues SH of the low halfword of v to *p.
//
//go:noescape
func StoreHalf(p *uint16, v uint32)

// ShiftLeft issues SLLW with the shift amount in a register.
func ShiftLeft(x, s uint32) uint32

// ShiftRight issues SRLW with the shift amount in a register.
func ShiftRight(x, s uint32) uint32

// ShiftRightArith issues SRAW with the shift amount in a register.
func ShiftRightArith(x int32, s uint32) int32

// LoadUpper issues LUI with UpperImmediate.
func LoadUpper() uint32

// PCPair issues two consecutive AUIPC instructions with a zero immediate and
// returns both results.
func PCPair() (first, second uintptr)
