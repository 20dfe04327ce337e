// Package loader extracts loadable images from RV32 ELF executables.
package loader

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"os"
)

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// ErrNotRISCV is returned for an ELF file built for another machine.
var ErrNotRISCV = errors.New("not a RISC-V ELF file")

// ErrNoSegments is returned when an ELF file has no loadable contents.
var ErrNoSegments = errors.New("no loadable segments")

// Magic is the four-byte ELF file signature.
var Magic = []byte{0x7f, 'E', 'L', 'F'}

// Segment represents a loadable segment from an ELF binary.
type Segment struct {
	// VirtAddr is the address where this segment should be loaded.
	VirtAddr uint32
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint32
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Program represents a loaded RV32 ELF program.
type Program struct {
	// EntryPoint is the address where execution should begin.
	EntryPoint uint32
	// Segments contains all loadable segments, in file order.
	Segments []Segment
}

// Load opens and parses an RV32 ELF executable.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse parses an RV32 ELF executable from r.
func Parse(r io.ReaderAt) (*Program, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("not a 32-bit ELF file (class: %v)", f.Class)
	}

	if f.Data != elf.ELFDATA2LSB {
		return nil, fmt.Errorf("not a little-endian ELF file (data: %v)", f.Data)
	}

	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("%w (machine type: %v)", ErrNotRISCV, f.Machine)
	}

	prog := &Program{
		EntryPoint: uint32(f.Entry),
	}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: uint32(phdr.Vaddr),
			Data:     data,
			MemSize:  uint32(phdr.Memsz),
			Flags:    flags,
		})
	}

	return prog, nil
}

// Image flattens the file contents of all segments into one contiguous
// image starting at the lowest segment address. Gaps between segments are
// zero-filled; BSS beyond each segment's file contents is not included.
func (p *Program) Image() (base uint32, image []byte, err error) {
	var (
		end   uint64
		found bool
	)

	for _, seg := range p.Segments {
		if len(seg.Data) == 0 {
			continue
		}
		if !found || seg.VirtAddr < base {
			base = seg.VirtAddr
		}
		if e := uint64(seg.VirtAddr) + uint64(len(seg.Data)); e > end {
			end = e
		}
		found = true
	}

	if !found {
		return 0, nil, ErrNoSegments
	}

	image = make([]byte, end-uint64(base))
	for _, seg := range p.Segments {
		if len(seg.Data) == 0 {
			continue
		}
		copy(image[seg.VirtAddr-base:], seg.Data)
	}

	return base, image, nil
}

// IsELF reports whether data begins with the ELF signature.
func IsELF(data []byte) bool {
	if len(data) < len(Magic) {
		return false
	}
	for i, b := range Magic {
		if data[i] != b {
			return false
		}
	}
	return true
}
