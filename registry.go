package gohz

import (
	"runtime"
	"sync"
)

// callSite identifies a single throttled emission point in caller
// code. Two different source locations always map to two different
// call sites and therefore to two independent gates.
type callSite uintptr

// gateRegistry materializes one Gate per call site, lazily: the first
// goroutine to reach a call site creates its gate, every later one
// reuses it. Gates are never removed; like the call sites they belong
// to, they live for the rest of the process.
//
// Lookup and creation are lock-free so the registry can sit on the
// same hot path as the gates it hands out.
type gateRegistry struct {
	clock Clock
	gates sync.Map // callSite -> *Gate
}

// gateFor returns the gate for the given call site, creating it with
// the given rate on first reach.
//
// The rate is bound when the gate is created and ignored afterward:
// a call site's rate is fixed at its first use, the module-level
// equivalent of a construction-time constant.
func (r *gateRegistry) gateFor(site callSite, rate float64) *Gate {
	if existing, ok := r.gates.Load(site); ok {
		return existing.(*Gate)
	}

	// under a first-reach race the losing gate is discarded before
	// it ever arms; both goroutines proceed with the same winner.
	created, _ := r.gates.LoadOrStore(site, NewGate(rate, r.clock))
	return created.(*Gate)
}

// size reports how many call sites have materialized a gate so far.
func (r *gateRegistry) size() int {
	n := 0
	r.gates.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// currentCallSite resolves the program counter of the caller's
// caller, skipping the exported entry point that invoked it.
func currentCallSite() callSite {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return callSite(0)
	}
	return callSite(pc)
}
