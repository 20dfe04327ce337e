// Package check provides the counter state and assertion primitive of the
// self-check harness.
//
// A Counters value holds the running tally of passed and failed checks and
// the aggregate failure flag. It is owned by the orchestrator and threaded
// through a Recorder, which is the only writer:
//
//	var counters check.Counters
//	r := check.NewRecorder(&counters)
//	r.Begin("shift")
//	r.Assert(sra(-16, 2) == -4, "SRA")
//	os.Exit(counters.Status())
package check

import "sync/atomic"

// Counters is the counter state of one harness run.
//
// Every field is an atomic cell, so each update is a real store to memory
// that a debugger or memory dump of the target can observe.
type Counters struct {
	passed    atomic.Uint32
	failed    atomic.Uint32
	aggregate atomic.Uint32
}

// Reset clears both counters and the aggregate failure flag.
func (c *Counters) Reset() {
	c.passed.Store(0)
	c.failed.Store(0)
	c.aggregate.Store(0)
}

// Passed returns the number of checks that evaluated true.
func (c *Counters) Passed() uint32 {
	return c.passed.Load()
}

// Failed returns the number of checks that evaluated false.
func (c *Counters) Failed() uint32 {
	return c.failed.Load()
}

// Total returns Passed() + Failed().
func (c *Counters) Total() uint32 {
	return c.passed.Load() + c.failed.Load()
}

// AggregateFailed reports whether any check has failed since the last Reset.
func (c *Counters) AggregateFailed() bool {
	return c.aggregate.Load() != 0
}

// Status derives the final status of a run: 0 if no check failed, 1
// otherwise.
func (c *Counters) Status() int {
	if c.AggregateFailed() {
		return 1
	}
	return 0
}

func (c *Counters) pass() {
	c.passed.Store(c.passed.Load() + 1)
}

func (c *Counters) fail() {
	c.failed.Store(c.failed.Load() + 1)
	c.aggregate.Store(1)
}
