// Package opaque provides values the compiler must treat as externally
// observable.
//
// Test operands and intermediate results live in atomic cells: every Load
// and Store is performed in program order and can never be constant-folded
// or elided, which is what a volatile qualifier guarantees elsewhere. The
// Of functions launder compile-time literals through a call the compiler
// may not inline, and Memory gives genuinely narrow loads and stores.
package opaque

import "sync/atomic"

// Int32 is an observable signed 32-bit cell.
type Int32 struct {
	v atomic.Int32
}

// NewInt32 returns a cell holding x.
func NewInt32(x int32) *Int32 {
	c := &Int32{}
	c.v.Store(x)
	return c
}

// Load reads the cell.
func (c *Int32) Load() int32 {
	return c.v.Load()
}

// Store writes x into the cell.
func (c *Int32) Store(x int32) {
	c.v.Store(x)
}

// Inc performs a separate load, add and store, like count++ on a volatile.
func (c *Int32) Inc() {
	c.v.Store(c.v.Load() + 1)
}

// Uint32 is an observable unsigned 32-bit cell.
type Uint32 struct {
	v atomic.Uint32
}

// NewUint32 returns a cell holding x.
func NewUint32(x uint32) *Uint32 {
	c := &Uint32{}
	c.v.Store(x)
	return c
}

// Load reads the cell.
func (c *Uint32) Load() uint32 {
	return c.v.Load()
}

// Store writes x into the cell.
func (c *Uint32) Store(x uint32) {
	c.v.Store(x)
}

// Int32Of returns x through a call that is never inlined, so the result is
// unknown at compile time.
//
//go:noinline
func Int32Of(x int32) int32 {
	return x
}

// Uint32Of returns x through a call that is never inlined.
//
//go:noinline
func Uint32Of(x uint32) uint32 {
	return x
}

// Bool returns x through a call that is never inlined.
//
//go:noinline
func Bool(x bool) bool {
	return x
}
