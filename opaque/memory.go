package opaque

import "unsafe"

// Memory is a word-aligned byte region used as test memory.
//
// Every accessor is a non-inlined call performing one typed access of the
// named width, so an 8-bit read is a byte load and never a wider load
// followed by masking. Byte order is the host's; all supported targets are
// little-endian. Out-of-range addresses panic.
type Memory struct {
	words []uint32
	data  []byte
}

// NewMemory allocates a zeroed region of at least size bytes, rounded up to
// a whole number of 32-bit words.
func NewMemory(size int) *Memory {
	n := (size + 3) / 4
	if n == 0 {
		n = 1
	}
	words := make([]uint32, n)
	return &Memory{
		words: words,
		data:  unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n*4),
	}
}

// Size returns the region size in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// Read8 loads a byte with zero extension (LBU).
//
//go:noinline
func (m *Memory) Read8(addr uint32) uint8 {
	return *(*uint8)(unsafe.Pointer(&m.data[addr]))
}

// Read8Signed loads a byte with sign extension (LB).
//
//go:noinline
func (m *Memory) Read8Signed(addr uint32) int32 {
	return int32(*(*int8)(unsafe.Pointer(&m.data[addr])))
}

// Read16 loads a halfword with zero extension (LHU).
//
//go:noinline
func (m *Memory) Read16(addr uint32) uint16 {
	return *(*uint16)(unsafe.Pointer(m.ptr(addr, 2)))
}

// Read16Signed loads a halfword with sign extension (LH).
//
//go:noinline
func (m *Memory) Read16Signed(addr uint32) int32 {
	return int32(*(*int16)(unsafe.Pointer(m.ptr(addr, 2))))
}

// Read32 loads a word (LW).
//
//go:noinline
func (m *Memory) Read32(addr uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(m.ptr(addr, 4)))
}

// Write8 stores the low byte of value (SB).
//
//go:noinline
func (m *Memory) Write8(addr uint32, value uint8) {
	*(*uint8)(unsafe.Pointer(&m.data[addr])) = value
}

// Write16 stores a halfword (SH).
//
//go:noinline
func (m *Memory) Write16(addr uint32, value uint16) {
	*(*uint16)(unsafe.Pointer(m.ptr(addr, 2))) = value
}

// Write32 stores a word (SW).
//
//go:noinline
func (m *Memory) Write32(addr uint32, value uint32) {
	*(*uint32)(unsafe.Pointer(m.ptr(addr, 4))) = value
}

// Ptr8 returns the address of the byte at addr.
func (m *Memory) Ptr8(addr uint32) *byte {
	return &m.data[addr]
}

// Ptr16 returns the address of the halfword at addr, which must be 2-byte
// aligned.
func (m *Memory) Ptr16(addr uint32) *uint16 {
	return (*uint16)(unsafe.Pointer(m.ptr(addr, 2)))
}

// ptr bounds-checks an access of size bytes at addr and returns its first
// byte. Misaligned accesses panic.
func (m *Memory) ptr(addr uint32, size uint32) *byte {
	if addr%size != 0 {
		panic("opaque: misaligned memory access")
	}
	_ = m.data[addr+size-1]
	return &m.data[addr]
}
