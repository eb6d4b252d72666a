package gohz

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies monotonically non-decreasing nanosecond timestamps
// on a process-local timeline.
//
// The absolute values are meaningless: only differences between two
// readings are. Implementations must never return a value lower than
// a previous one observed by the same goroutine; cross-goroutine
// monotonicity is best effort.
type Clock interface {
	Now() uint64
}

// minCoarseGranularity is the lowest refresh interval accepted
// for the coarse clock. Anything finer defeats its purpose.
const minCoarseGranularity = 100 * time.Microsecond

// defaultCoarseGranularity is used by the shared coarse clock
// and by NewCoarseClock when no granularity is given.
const defaultCoarseGranularity = time.Millisecond

// preciseClock reads the runtime monotonic clock on every call.
type preciseClock struct {
	base time.Time
}

// NewPreciseClock returns a Clock backed by the runtime monotonic
// clock. Every call performs a full time read: the finest granularity
// at the highest per-call cost.
func NewPreciseClock() Clock {
	return &preciseClock{base: time.Now()}
}

func (c *preciseClock) Now() uint64 {
	// time.Since uses the monotonic reading embedded in base,
	// so wall clock adjustments cannot move this backward.
	elapsed := time.Since(c.base)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed)
}

// CoarseClock is a Clock whose readings are served from a cached
// value refreshed in the background at a bounded interval.
//
// A reading costs a single atomic load, which makes it suitable for
// very hot loops where sub-millisecond gating precision is not needed.
// Gating boundaries become as coarse as the refresh granularity.
type CoarseClock struct {
	base    time.Time
	cached  atomic.Uint64
	closing chan struct{}
	closed  sync.Once
}

// NewCoarseClock returns a started CoarseClock refreshing its cached
// reading every granularity. A granularity below the supported minimum
// is clamped to it; zero or negative selects the default.
//
// The caller owns the clock and may Stop it when done with it.
// Stopping is only useful for tests and short-lived components:
// a clock feeding process-lifetime gates should simply be kept.
func NewCoarseClock(granularity time.Duration) *CoarseClock {
	if granularity <= 0 {
		granularity = defaultCoarseGranularity
	}
	if granularity < minCoarseGranularity {
		granularity = minCoarseGranularity
	}

	c := &CoarseClock{
		base:    time.Now(),
		closing: make(chan struct{}),
	}

	go c.refreshLoop(granularity)

	return c
}

func (c *CoarseClock) refreshLoop(granularity time.Duration) {
	ticker := time.NewTicker(granularity)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.refresh()
		case <-c.closing:
			return
		}
	}
}

func (c *CoarseClock) refresh() {
	elapsed := time.Since(c.base)
	if elapsed < 0 {
		return
	}
	// single writer: the stored value only ever grows,
	// so concurrent readers observe a non-decreasing timeline.
	c.cached.Store(uint64(elapsed))
}

func (c *CoarseClock) Now() uint64 {
	return c.cached.Load()
}

// Stop terminates the background refresh.
// After Stop the clock keeps returning the last cached reading.
func (c *CoarseClock) Stop() {
	c.closed.Do(func() {
		close(c.closing)
	})
}

var (
	sharedCoarseClock     *CoarseClock
	sharedCoarseClockOnce sync.Once
)

// SharedCoarseClock returns a process-wide CoarseClock with the
// default granularity, started lazily on first use and never stopped.
//
// Use it when multiple throttlers should share a single refresh
// goroutine instead of each starting their own.
func SharedCoarseClock() Clock {
	sharedCoarseClockOnce.Do(func() {
		sharedCoarseClock = NewCoarseClock(defaultCoarseGranularity)
	})
	return sharedCoarseClock
}

// ManualClock is a settable Clock for deterministic tests.
//
// It starts at zero and only moves when told to,
// so time-dependent behavior can be verified without sleeping.
type ManualClock struct {
	current atomic.Uint64
}

// NewManualClock returns a ManualClock positioned at the given
// nanosecond timestamp.
func NewManualClock(start uint64) *ManualClock {
	c := &ManualClock{}
	c.current.Store(start)
	return c
}

func (c *ManualClock) Now() uint64 {
	return c.current.Load()
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.current.Add(uint64(d))
}

// Set positions the clock at the given nanosecond timestamp.
// Setting the clock backward is allowed: gates are expected
// to absorb it via saturating arithmetic.
func (c *ManualClock) Set(to uint64) {
	c.current.Store(to)
}
