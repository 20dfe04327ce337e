// Package raw issues individual RV32I instructions directly, bypassing the
// compiler's instruction selection.
//
// It is the harness's only foreign boundary and is used only for the
// instruction forms the compiler may avoid emitting from equivalent Go:
// byte and halfword loads and stores, register-operand 32-bit shifts, and
// the upper-immediate/PC-relative pair (LUI, AUIPC).
//
// On riscv64 every function is a hand-written assembly routine that issues
// exactly the named instruction; Available is true. On other architectures
// a portable backend computes the same results in Go so callers still
// build, Available is false, and PCPair panics with ErrUnavailable.
package raw

import "errors"

// InstructionWidth is the width in bytes of one base-ISA instruction.
const InstructionWidth = 4

// UpperImmediate is the 20-bit immediate LoadUpper places in bits 31:12.
const UpperImmediate = 0x12345

// ErrUnavailable is the panic value of PCPair on a build without a direct
// instruction backend.
var ErrUnavailable = errors.New("raw: no direct instruction backend for this architecture")
