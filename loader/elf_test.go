package loader_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32check/loader"
)

const (
	emRISCV = 243
	emARM   = 40
	ptLoad  = 1
	ptNote  = 4
	pfX     = 1
	pfW     = 2
	pfR     = 4
)

// testSegment describes one program header of a synthesized ELF32 file.
type testSegment struct {
	typ   uint32
	vaddr uint32
	data  []byte
	memsz uint32
	flags uint32
}

// buildELF32 synthesizes a little-endian ELF32 executable with the given
// program headers and no section headers.
func buildELF32(machine uint16, entry uint32, segs ...testSegment) []byte {
	const ehsize, phentsize = 52, 32

	header := make([]byte, ehsize)
	copy(header[0:4], []byte{0x7f, 'E', 'L', 'F'})
	header[4] = 1 // ELFCLASS32
	header[5] = 1 // little endian
	header[6] = 1 // version
	binary.LittleEndian.PutUint16(header[16:18], 2) // executable
	binary.LittleEndian.PutUint16(header[18:20], machine)
	binary.LittleEndian.PutUint32(header[20:24], 1)
	binary.LittleEndian.PutUint32(header[24:28], entry)
	binary.LittleEndian.PutUint32(header[28:32], ehsize) // phoff
	binary.LittleEndian.PutUint16(header[40:42], ehsize)
	binary.LittleEndian.PutUint16(header[42:44], phentsize)
	binary.LittleEndian.PutUint16(header[44:46], uint16(len(segs)))

	phdrs := make([]byte, phentsize*len(segs))
	offset := uint32(ehsize + len(phdrs))
	var payload []byte
	for i, seg := range segs {
		ph := phdrs[i*phentsize : (i+1)*phentsize]
		memsz := seg.memsz
		if memsz == 0 {
			memsz = uint32(len(seg.data))
		}
		binary.LittleEndian.PutUint32(ph[0:4], seg.typ)
		binary.LittleEndian.PutUint32(ph[4:8], offset)
		binary.LittleEndian.PutUint32(ph[8:12], seg.vaddr)
		binary.LittleEndian.PutUint32(ph[12:16], seg.vaddr)
		binary.LittleEndian.PutUint32(ph[16:20], uint32(len(seg.data)))
		binary.LittleEndian.PutUint32(ph[20:24], memsz)
		binary.LittleEndian.PutUint32(ph[24:28], seg.flags)
		binary.LittleEndian.PutUint32(ph[28:32], 4)
		payload = append(payload, seg.data...)
		offset += uint32(len(seg.data))
	}

	out := append(header, phdrs...)
	return append(out, payload...)
}

// rv32 code: addi a0, zero, 42; ret
var code = []byte{
	0x13, 0x05, 0xa0, 0x02,
	0x67, 0x80, 0x00, 0x00,
}

var _ = Describe("ELF Loader", func() {
	Describe("Parse", func() {
		Context("with a valid RV32 ELF binary", func() {
			var prog *loader.Program

			BeforeEach(func() {
				var err error
				prog, err = loader.Parse(bytes.NewReader(buildELF32(emRISCV, 0x80,
					testSegment{typ: ptLoad, vaddr: 0x80, data: code, flags: pfR | pfX},
				)))
				Expect(err).NotTo(HaveOccurred())
			})

			It("should extract the correct entry point", func() {
				Expect(prog.EntryPoint).To(Equal(uint32(0x80)))
			})

			It("should load the segment contents and flags", func() {
				Expect(prog.Segments).To(HaveLen(1))
				Expect(prog.Segments[0].VirtAddr).To(Equal(uint32(0x80)))
				Expect(prog.Segments[0].Data).To(Equal(code))
				Expect(prog.Segments[0].Flags).To(Equal(loader.SegmentFlagRead | loader.SegmentFlagExecute))
			})
		})

		It("should skip non-loadable program headers", func() {
			prog, err := loader.Parse(bytes.NewReader(buildELF32(emRISCV, 0,
				testSegment{typ: ptNote, vaddr: 0x1000, data: []byte{1, 2, 3, 4}},
				testSegment{typ: ptLoad, vaddr: 0, data: code, flags: pfR | pfX},
			)))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Segments).To(HaveLen(1))
			Expect(prog.Segments[0].VirtAddr).To(BeZero())
		})

		It("should reject a non-RISC-V machine", func() {
			_, err := loader.Parse(bytes.NewReader(buildELF32(emARM, 0,
				testSegment{typ: ptLoad, data: code},
			)))

			Expect(err).To(MatchError(loader.ErrNotRISCV))
		})

		It("should reject data that is not ELF", func() {
			_, err := loader.Parse(bytes.NewReader([]byte("not an elf file")))

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("ELF"))
		})

		It("should reject a 64-bit ELF", func() {
			data := buildELF32(emRISCV, 0, testSegment{typ: ptLoad, data: code})
			data[4] = 2 // ELFCLASS64

			_, err := loader.Parse(bytes.NewReader(data))

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Load", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "elf-loader-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should load a file from disk", func() {
			path := filepath.Join(tempDir, "test_rv32i.elf")
			Expect(os.WriteFile(path, buildELF32(emRISCV, 0,
				testSegment{typ: ptLoad, data: code, flags: pfR | pfX},
			), 0644)).To(Succeed())

			prog, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Segments).To(HaveLen(1))
		})

		It("should return error for non-existent file", func() {
			_, err := loader.Load("/nonexistent/path/to/file.elf")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to open"))
		})
	})

	Describe("Image", func() {
		It("should flatten segments from the lowest address with zero-filled gaps", func() {
			prog := &loader.Program{Segments: []loader.Segment{
				{VirtAddr: 0x108, Data: []byte{0xaa, 0xbb}},
				{VirtAddr: 0x100, Data: []byte{1, 2, 3, 4}},
			}}

			base, image, err := prog.Image()

			Expect(err).NotTo(HaveOccurred())
			Expect(base).To(Equal(uint32(0x100)))
			Expect(image).To(Equal([]byte{1, 2, 3, 4, 0, 0, 0, 0, 0xaa, 0xbb}))
		})

		It("should exclude BSS beyond the file contents", func() {
			prog := &loader.Program{Segments: []loader.Segment{
				{VirtAddr: 0, Data: code, MemSize: 64},
				{VirtAddr: 0x40, MemSize: 32},
			}}

			_, image, err := prog.Image()

			Expect(err).NotTo(HaveOccurred())
			Expect(image).To(Equal(code))
		})

		It("should fail without file contents", func() {
			prog := &loader.Program{Segments: []loader.Segment{{VirtAddr: 0, MemSize: 32}}}

			_, _, err := prog.Image()

			Expect(err).To(MatchError(loader.ErrNoSegments))
		})
	})

	Describe("IsELF", func() {
		It("should recognise the ELF signature", func() {
			Expect(loader.IsELF(buildELF32(emRISCV, 0))).To(BeTrue())
			Expect(loader.IsELF([]byte{0x13, 0x05, 0xa0, 0x02})).To(BeFalse())
			Expect(loader.IsELF([]byte{0x7f})).To(BeFalse())
		})
	})
})
