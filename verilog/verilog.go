// Package verilog renders a flat RV32 program image as the instruction
// memory initialization block of a Verilog CPU model.
//
// Every 32-bit little-endian word of the image becomes one case arm:
//
//	32'h0:  o_instr <= 32'h02a00513;
//
// A trailing partial word is zero-padded.
package verilog

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrEmptyImage is returned when there is nothing to convert.
var ErrEmptyImage = errors.New("empty image")

// Options configures Write.
type Options struct {
	// StartAddr is the memory address of the first byte of the image.
	StartAddr uint32

	// SourceName is recorded in the header comment.
	SourceName string
}

// Summary describes a completed conversion.
type Summary struct {
	Bytes        int
	Instructions int
	FirstAddr    uint32
	LastAddr     uint32
}

// Write emits the initialization block for image to w.
func Write(w io.Writer, image []byte, opts Options) (Summary, error) {
	if len(image) == 0 {
		return Summary{}, ErrEmptyImage
	}

	bw := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(bw, "// Verilog instruction memory initialization")
	_, _ = fmt.Fprintf(bw, "// Generated from: %s\n", opts.SourceName)
	_, _ = fmt.Fprintf(bw, "// Total size: %d bytes (%d instructions)\n", len(image), len(image)/4)
	_, _ = fmt.Fprintf(bw, "// Starting address: 0x%08x\n\n", opts.StartAddr)

	sum := Summary{
		Bytes:     len(image),
		FirstAddr: opts.StartAddr,
	}

	var word [4]byte
	for off := 0; off < len(image); off += 4 {
		word = [4]byte{}
		copy(word[:], image[off:])

		addr := opts.StartAddr + uint32(off)
		_, _ = fmt.Fprintf(bw, "    32'h%x:  o_instr <= 32'h%08x;\n",
			addr, binary.LittleEndian.Uint32(word[:]))

		sum.LastAddr = addr
		sum.Instructions++
	}

	_, _ = fmt.Fprintf(bw, "\n// Total instructions: %d\n", sum.Instructions)

	if err := bw.Flush(); err != nil {
		return Summary{}, fmt.Errorf("failed to write verilog: %w", err)
	}

	return sum, nil
}

// DefaultOutputPath returns the output path used when none is given: the
// input path with its extension replaced by "_code.v".
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_code.v"
}
