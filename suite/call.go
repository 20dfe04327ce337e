package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func callModule() Module {
	return Module{
		Name:     "call",
		Category: CategoryCall,
		Checks:   3,
		Run:      Call,
	}
}

// indirectAdd is called through a variable so the call is a jump through a
// register rather than a direct call.
var indirectAdd = add

// Call checks argument passing and return for a direct call, an indirect
// call and a recursive call.
func Call(r *check.Recorder) {
	result := opaque.NewInt32(0)

	result.Store(add(opaque.Int32Of(7), opaque.Int32Of(8)))
	r.Assert(result.Load() == 15, "function call")

	result.Store(indirectAdd(opaque.Int32Of(7), opaque.Int32Of(8)))
	r.Assert(result.Load() == 15, "indirect call")

	// 1..10 without multiplication.
	result.Store(recursiveSum(opaque.Int32Of(10)))
	r.Assert(result.Load() == 55, "recursive function")
}

//go:noinline
func add(a, b int32) int32 {
	return a + b
}

// recursiveSum is never inlined, and the addition after the recursive call
// keeps it out of tail position, so each level pushes a real frame.
//
//go:noinline
func recursiveSum(n int32) int32 {
	if n <= 0 {
		return 0
	}
	return n + recursiveSum(n-1)
}
