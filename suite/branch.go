package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func branchModule() Module {
	return Module{
		Name:     "branch",
		Category: CategoryControl,
		Checks:   6,
		Run:      Branch,
	}
}

// Branch checks each conditional branch through a counter that is
// incremented only on the taken path.
func Branch(r *check.Recorder) {
	a := opaque.NewInt32(10)
	b := opaque.NewInt32(5)
	count := opaque.NewInt32(0)

	if a.Load() == a.Load() {
		count.Inc()
	}
	r.Assert(count.Load() == 1, "BEQ")

	if a.Load() != b.Load() {
		count.Inc()
	}
	r.Assert(count.Load() == 2, "BNE")

	if b.Load() < a.Load() {
		count.Inc()
	}
	r.Assert(count.Load() == 3, "BLT")

	if a.Load() >= b.Load() {
		count.Inc()
	}
	r.Assert(count.Load() == 4, "BGE")

	ua := opaque.NewUint32(5)
	ub := opaque.NewUint32(10)

	if ua.Load() < ub.Load() {
		count.Inc()
	}
	r.Assert(count.Load() == 5, "BLTU")

	if ub.Load() >= ua.Load() {
		count.Inc()
	}
	r.Assert(count.Load() == 6, "BGEU")
}
