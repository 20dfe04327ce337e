package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func jumpModule() Module {
	return Module{
		Name:     "jump",
		Category: CategoryControl,
		Checks:   1,
		Run:      Jump,
	}
}

// Jump checks jump-and-link through a closure that writes to its caller's
// frame.
func Jump(r *check.Recorder) {
	called := opaque.NewInt32(0)

	target := func() {
		called.Store(1)
	}
	jumpTo(target)

	r.Assert(called.Load() == 1, "JAL/JALR")
}

//go:noinline
func jumpTo(target func()) {
	target()
}
