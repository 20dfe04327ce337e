package opaque_test

import (
	"unsafe"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32check/opaque"
)

var _ = Describe("Memory", func() {
	var m *opaque.Memory

	BeforeEach(func() {
		m = opaque.NewMemory(32)
	})

	It("should round the size up to whole words", func() {
		Expect(opaque.NewMemory(5).Size()).To(Equal(8))
		Expect(opaque.NewMemory(0).Size()).To(Equal(4))
		Expect(m.Size()).To(Equal(32))
	})

	It("should be word aligned", func() {
		Expect(uintptr(unsafe.Pointer(m.Ptr8(0))) % 4).To(BeZero())
	})

	It("should start zeroed", func() {
		for addr := uint32(0); addr < 32; addr += 4 {
			Expect(m.Read32(addr)).To(BeZero())
		}
	})

	Describe("word access", func() {
		It("should read back a stored word", func() {
			m.Write32(12, 0xdeadbeef)
			Expect(m.Read32(12)).To(Equal(uint32(0xdeadbeef)))
		})
	})

	Describe("byte access", func() {
		It("should sign-extend 0xff to -1 and zero-extend it to 255", func() {
			m.Write8(3, 0xff)
			Expect(m.Read8Signed(3)).To(Equal(int32(-1)))
			Expect(m.Read8(3)).To(Equal(uint8(255)))
		})

		It("should sign-extend 0x80 to -128", func() {
			m.Write8(7, 0x80)
			Expect(m.Read8Signed(7)).To(Equal(int32(-128)))
		})

		It("should leave positive bytes unchanged under sign extension", func() {
			m.Write8(1, 0x7f)
			Expect(m.Read8Signed(1)).To(Equal(int32(127)))
		})

		It("should only write the addressed byte", func() {
			m.Write32(0, 0)
			m.Write8(1, 0xaa)
			Expect(m.Read8(0)).To(BeZero())
			Expect(m.Read8(1)).To(Equal(uint8(0xaa)))
			Expect(m.Read8(2)).To(BeZero())
		})
	})

	Describe("halfword access", func() {
		It("should sign-extend 0xffff to -1 and zero-extend it to 65535", func() {
			m.Write16(4, 0xffff)
			Expect(m.Read16Signed(4)).To(Equal(int32(-1)))
			Expect(m.Read16(4)).To(Equal(uint16(65535)))
		})

		It("should share storage with Ptr16", func() {
			*m.Ptr16(6) = 0x8000
			Expect(m.Read16(6)).To(Equal(uint16(0x8000)))
			Expect(m.Read16Signed(6)).To(Equal(int32(-32768)))
		})
	})

	Describe("faults", func() {
		It("should panic on an out-of-range byte", func() {
			Expect(func() { m.Read8(32) }).To(Panic())
		})

		It("should panic on an out-of-range word", func() {
			Expect(func() { m.Read32(32) }).To(Panic())
		})

		It("should panic on a misaligned halfword", func() {
			Expect(func() { m.Read16(3) }).To(Panic())
		})
	})
})
