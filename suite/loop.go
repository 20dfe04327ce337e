package suite

import (
	"github.com/sarchlab/rv32check/check"
	"github.com/sarchlab/rv32check/opaque"
)

func loopModule() Module {
	return Module{
		Name:     "loop",
		Category: CategoryIteration,
		Checks:   2,
		Run:      Loop,
	}
}

// Loop computes the sum 0..9 with a counted loop and with a condition-only
// loop; both must reach 45.
func Loop(r *check.Recorder) {
	sum := opaque.NewInt32(0)
	i := opaque.NewInt32(0)

	for i.Store(0); i.Load() < 10; i.Inc() {
		sum.Store(sum.Load() + i.Load())
	}
	r.Assert(sum.Load() == 45, "for loop")

	sum.Store(0)
	i.Store(0)
	for i.Load() < 10 {
		sum.Store(sum.Load() + i.Load())
		i.Inc()
	}
	r.Assert(sum.Load() == 45, "while loop")
}
