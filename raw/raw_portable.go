//go:build !riscv64

package raw

import "unsafe"

// Available reports whether this build issues instructions directly.
const Available = false

// LoadByte loads *p with sign extension.
//
//go:noinline
func LoadByte(p *byte) int32 {
	return int32(*(*int8)(unsafe.Pointer(p)))
}

// LoadByteU loads *p with zero extension.
//
//go:noinline
func LoadByteU(p *byte) uint32 {
	return uint32(*p)
}

// LoadHalf loads *p with sign extension.
//
//go:noinline
func LoadHalf(p *uint16) int32 {
	return int32(*(*int16)(unsafe.Pointer(p)))
}

// LoadHalfU loads *p with zero extension.
//
//go:noinline
func LoadHalfU(p *uint16) uint32 {
	return uint32(*p)
}

// StoreByte stores the low byte of v to *p.
//
//go:noinline
func StoreByte(p *byte, v uint32) {
	*p = byte(v)
}

// StoreHalf stores the low halfword of v to *p.
//
//go:noinline
func StoreHalf(p *uint16, v uint32) {
	*p = uint16(v)
}

// ShiftLeft shifts x left by the low five bits of s.
//
//go:noinline
func ShiftLeft(x, s uint32) uint32 {
	return x << (s & 31)
}

// ShiftRight shifts x right logically by the low five bits of s.
//
//go:noinline
func ShiftRight(x, s uint32) uint32 {
	return x >> (s & 31)
}

// ShiftRightArith shifts x right arithmetically by the low five bits of s.
//
//go:noinline
func ShiftRightArith(x int32, s uint32) int32 {
	return x >> (s & 31)
}

// LoadUpper returns UpperImmediate placed in bits 31:12.
//
//go:noinline
func LoadUpper() uint32 {
	return UpperImmediate << 12
}

// PCPair panics with ErrUnavailable: a PC-relative capture cannot be
// expressed without a direct instruction backend.
func PCPair() (first, second uintptr) {
	panic(ErrUnavailable)
}
