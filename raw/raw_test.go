package raw_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32check/opaque"
	"github.com/sarchlab/rv32check/raw"
)

var _ = Describe("Raw instructions", func() {
	var m *opaque.Memory

	BeforeEach(func() {
		m = opaque.NewMemory(16)
	})

	Context("byte loads and stores", func() {
		It("should sign-extend with LB and zero-extend with LBU", func() {
			m.Write8(0, 0xff)

			Expect(raw.LoadByte(m.Ptr8(0))).To(Equal(int32(-1)))
			Expect(raw.LoadByteU(m.Ptr8(0))).To(Equal(uint32(255)))
		})

		It("should store only the low byte with SB", func() {
			raw.StoreByte(m.Ptr8(5), 0x12345680)

			Expect(m.Read8(5)).To(Equal(uint8(0x80)))
			Expect(m.Read8(4)).To(BeZero())
			Expect(m.Read8(6)).To(BeZero())
			Expect(raw.LoadByte(m.Ptr8(5))).To(Equal(int32(-128)))
		})
	})

	Context("halfword loads and stores", func() {
		It("should sign-extend with LH and zero-extend with LHU", func() {
			m.Write16(2, 0xffff)

			Expect(raw.LoadHalf(m.Ptr16(2))).To(Equal(int32(-1)))
			Expect(raw.LoadHalfU(m.Ptr16(2))).To(Equal(uint32(65535)))
		})

		It("should store only the low halfword with SH", func() {
			raw.StoreHalf(m.Ptr16(8), 0xabcd8000)

			Expect(m.Read16(8)).To(Equal(uint16(0x8000)))
			Expect(m.Read16(10)).To(BeZero())
			Expect(raw.LoadHalfU(m.Ptr16(8))).To(Equal(uint32(32768)))
		})
	})

	Context("register-operand shifts", func() {
		It("should shift left", func() {
			Expect(raw.ShiftLeft(10, 2)).To(Equal(uint32(40)))
		})

		It("should shift right logically", func() {
			Expect(raw.ShiftRight(10, 2)).To(Equal(uint32(2)))
			Expect(raw.ShiftRight(0xfffffff0, 2)).To(Equal(uint32(1073741820)))
		})

		It("should propagate the sign on arithmetic right shift", func() {
			Expect(raw.ShiftRightArith(-16, 2)).To(Equal(int32(-4)))
		})

		It("should use only the low five bits of the shift amount", func() {
			Expect(raw.ShiftLeft(1, 33)).To(Equal(uint32(2)))
			Expect(raw.ShiftRightArith(-16, 34)).To(Equal(int32(-4)))
		})
	})

	Context("upper immediate", func() {
		It("should place the immediate in bits 31:12", func() {
			Expect(raw.LoadUpper()).To(Equal(uint32(0x12345000)))
		})
	})

	Context("PC-relative capture", func() {
		It("should capture two addresses one instruction apart", func() {
			if !raw.Available {
				Skip("no direct instruction backend on this architecture")
			}

			first, second := raw.PCPair()

			Expect(first).NotTo(BeZero())
			Expect(second - first).To(Equal(uintptr(raw.InstructionWidth)))
		})

		It("should refuse without a direct backend", func() {
			if raw.Available {
				Skip("direct instruction backend present")
			}

			Expect(func() { raw.PCPair() }).To(PanicWith(raw.ErrUnavailable))
		})
	})
})
