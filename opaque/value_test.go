package opaque_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32check/opaque"
)

var _ = Describe("Observable values", func() {
	It("should hold and replace a signed value", func() {
		c := opaque.NewInt32(-16)
		Expect(c.Load()).To(Equal(int32(-16)))

		c.Store(42)
		Expect(c.Load()).To(Equal(int32(42)))
	})

	It("should increment through a separate load and store", func() {
		c := opaque.NewInt32(0)
		for i := 0; i < 6; i++ {
			c.Inc()
		}
		Expect(c.Load()).To(Equal(int32(6)))
	})

	It("should wrap like a 32-bit register on increment", func() {
		c := opaque.NewInt32(0x7fffffff)
		c.Inc()
		Expect(c.Load()).To(Equal(int32(-2147483648)))
	})

	It("should hold an unsigned all-ones pattern", func() {
		c := opaque.NewUint32(0xffffffff)
		Expect(c.Load()).To(Equal(uint32(0xffffffff)))
		Expect(int32(c.Load())).To(Equal(int32(-1)))
	})

	It("should pass laundered values through unchanged", func() {
		Expect(opaque.Int32Of(-4)).To(Equal(int32(-4)))
		Expect(opaque.Uint32Of(0xabcd0000)).To(Equal(uint32(0xabcd0000)))
		Expect(opaque.Bool(true)).To(BeTrue())
	})
})
