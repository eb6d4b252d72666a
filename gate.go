package gohz

import (
	"math"
	"sync"
	"sync/atomic"
)

// neverAdmitted is the sentinel held by lastAdmitNS while no emission
// has been admitted yet. A stored elapsed reading can never reach this
// value, so the first call through a gate is always recognizable no
// matter how close to the epoch it lands.
const neverAdmitted = math.MaxUint64

// unboundedInterval is the interval assigned to non-positive rates:
// after the first admission the gate never admits again.
const unboundedInterval = math.MaxUint64

// Gate holds the throttling state for a single call site and decides,
// under concurrent access, whether the current attempt may emit.
//
// All shared mutable state is a single atomic scalar updated through
// compare-and-swap, so a Gate never blocks, never sleeps and cannot be
// poisoned the way a mutex-guarded timestamp could. Admission checks
// complete in bounded constant time, which keeps them safe to place in
// tight high-frequency loops.
//
// A Gate is created per call site and lives for the rest of the
// process. The zero value is not usable: use NewGate.
type Gate struct {
	clock Clock

	// intervalNS is fixed at construction from the configured rate.
	// The rate cannot be changed afterward.
	intervalNS uint64

	// startEpoch is captured exactly once, the first time any
	// goroutine reaches TryAdmit, strictly before the first elapsed
	// computation.
	arm        sync.Once
	startEpoch uint64

	// lastAdmitNS holds the elapsed-nanoseconds-since-epoch of the
	// most recent admission, or neverAdmitted. It only ever advances.
	lastAdmitNS atomic.Uint64
}

// NewGate returns a Gate admitting at most rate emissions per second.
//
// The interval between admissions is derived from the rate here, once:
// a gate's rate is part of its identity and cannot change afterward.
// A rate that is zero, negative or NaN is not an error: it produces a
// gate that admits exactly the first attempt and nothing after it.
//
// A nil clock selects the package default precise clock.
func NewGate(rate float64, clock Clock) *Gate {
	if clock == nil {
		clock = defaultClock
	}

	g := &Gate{
		clock:      clock,
		intervalNS: intervalForRate(rate),
	}
	g.lastAdmitNS.Store(neverAdmitted)

	return g
}

// intervalForRate converts a rate in Hz to the minimum nanosecond
// spacing between admissions.
func intervalForRate(rate float64) uint64 {
	if math.IsNaN(rate) || rate <= 0 {
		return unboundedInterval
	}

	interval := math.Round(float64(nanosPerSecond) / rate)
	if interval >= float64(math.MaxInt64) {
		// sub-nanohertz rates degenerate to "at most once"
		return unboundedInterval
	}

	return uint64(interval)
}

const nanosPerSecond = 1_000_000_000

// TryAdmit reports whether the current attempt is allowed to emit.
//
// The first call on a gate is always admitted. After that, a call is
// admitted only when at least the gate interval has elapsed since the
// previous admission, and at most one of any set of concurrent callers
// wins a given interval window. A false result is the intended
// throttling outcome, not a failure.
func (g *Gate) TryAdmit() bool {
	_, admitted := g.admit()
	return admitted
}

// admit runs the admission check and, when admitted, also returns the
// elapsed-since-epoch value claimed for this admission.
func (g *Gate) admit() (uint64, bool) {
	// establish the epoch strictly before computing elapsed time,
	// or a first reading taken against a later epoch could be
	// saturated to zero and suppress the first emission.
	g.arm.Do(g.armNow)

	last := g.lastAdmitNS.Load()

	now := g.clock.Now()
	var elapsed uint64
	if now > g.startEpoch {
		// saturates at zero when the clock appears to move
		// backward across goroutines.
		elapsed = now - g.startEpoch
	}

	// fast path: the common case is "too soon", and it must stay a
	// load, a clock read and a comparison. No write happens here.
	if last != neverAdmitted {
		if elapsed < last || elapsed-last < g.intervalNS {
			return 0, false
		}
	}

	// slow path: claim the admission slot. Losing the race means
	// another goroutine was admitted for this window in the gap
	// between our load and this swap; suppressing is then correct,
	// so we give up instead of re-checking against the fresh value.
	if !g.lastAdmitNS.CompareAndSwap(last, elapsed) {
		return 0, false
	}

	return elapsed, true
}

func (g *Gate) armNow() {
	g.startEpoch = g.clock.Now()
}

// Interval returns the minimum nanosecond spacing between admissions.
func (g *Gate) Interval() uint64 {
	return g.intervalNS
}

// defaultClock backs gates and throttlers built without an explicit
// clock. Shared so that all of them live on one timeline.
var defaultClock = NewPreciseClock()
