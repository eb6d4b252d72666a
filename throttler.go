package gohz

import (
	"fmt"
	"sync"
)

// Throttler is the caller-facing surface for throttled logging.
//
// Each of the leveled XxxHz methods identifies its own call site:
// the first goroutine to reach a given source location creates that
// location's Gate with the given rate, and every later pass through
// the same location reuses it. The rate argument is therefore bound
// once per call site, at first use, and ignored afterward.
//
// You are encouraged to use this type when storing references
// to your throttlers in order to allow for easier implementations switch.
type Throttler interface {
	// ErrorHz logs at LevelError at most rate times per second
	// from this call site. The first call always logs.
	ErrorHz(rate float64, format string, args ...interface{})

	// WarnHz logs at LevelWarning at most rate times per second
	// from this call site. The first call always logs.
	WarnHz(rate float64, format string, args ...interface{})

	// InfoHz logs at LevelInfo at most rate times per second
	// from this call site. The first call always logs.
	InfoHz(rate float64, format string, args ...interface{})

	// DebugHz logs at LevelDebug at most rate times per second
	// from this call site. The first call always logs.
	DebugHz(rate float64, format string, args ...interface{})

	// TraceHz logs at LevelTrace at most rate times per second
	// from this call site. The first call always logs.
	TraceHz(rate float64, format string, args ...interface{})

	// LogHz logs at the given level at most rate times per second
	// from this call site. The first call always logs.
	//
	// It is the generic form of the five leveled methods: the call
	// site keying is identical, so attempts with different levels
	// from the same source location contend for the same gate.
	LogHz(level Level, rate float64, format string, args ...interface{})

	// Bind returns a proxy owning a single explicit Gate with the
	// given rate, shared by all of the proxy's leveled methods.
	//
	// Use it when you want direct control over the gate's identity
	// and lifetime instead of the implicit per-call-site keying,
	// for example to share one cadence across several source
	// locations or to store the throttle in a struct field.
	Bind(rate float64) BoundThrottler

	// SetSink replaces the sink that admitted emissions are
	// forwarded to. Gate state is unaffected.
	SetSink(sink Sink)

	// History returns the retained admission records, oldest
	// first, or nil when history is disabled.
	History() []AdmissionRecord
}

// BoundThrottler is a Throttler proxy bound to one explicit Gate,
// dropping the rate parameter from every call.
//
// All leveled methods share the same gate: an Info emission and an
// Error emission from the same BoundThrottler contend for the same
// interval window.
type BoundThrottler interface {
	// Error logs at LevelError if the bound gate admits.
	Error(format string, args ...interface{})

	// Warn logs at LevelWarning if the bound gate admits.
	Warn(format string, args ...interface{})

	// Info logs at LevelInfo if the bound gate admits.
	Info(format string, args ...interface{})

	// Debug logs at LevelDebug if the bound gate admits.
	Debug(format string, args ...interface{})

	// Trace logs at LevelTrace if the bound gate admits.
	Trace(format string, args ...interface{})

	// Gate exposes the underlying gate, for callers that want to
	// run the admission check themselves.
	Gate() *Gate
}

// throttlerDefaultImpl holds all the required runtime data
// together with the parsed configuration.
type throttlerDefaultImpl struct {
	Config *throttlerEffectiveConfig

	// Clock can be overridden for testing via the configuration.
	Clock Clock

	// Registry materializes one gate per call site.
	Registry gateRegistry

	// History is nil unless enabled by the configuration.
	HistoryData *admissionHistory

	// the sink is only touched after an admission, which is already
	// rate limited, so a read lock here never burdens the fast path.
	sinkLock sync.RWMutex
	sink     Sink
}

func (instance *throttlerDefaultImpl) ErrorHz(rate float64, format string, args ...interface{}) {
	instance.logHz(currentCallSite(), LevelError, rate, format, args)
}

func (instance *throttlerDefaultImpl) WarnHz(rate float64, format string, args ...interface{}) {
	instance.logHz(currentCallSite(), LevelWarning, rate, format, args)
}

func (instance *throttlerDefaultImpl) InfoHz(rate float64, format string, args ...interface{}) {
	instance.logHz(currentCallSite(), LevelInfo, rate, format, args)
}

func (instance *throttlerDefaultImpl) DebugHz(rate float64, format string, args ...interface{}) {
	instance.logHz(currentCallSite(), LevelDebug, rate, format, args)
}

func (instance *throttlerDefaultImpl) TraceHz(rate float64, format string, args ...interface{}) {
	instance.logHz(currentCallSite(), LevelTrace, rate, format, args)
}

func (instance *throttlerDefaultImpl) LogHz(level Level, rate float64, format string, args ...interface{}) {
	instance.logHz(currentCallSite(), level, rate, format, args)
}

func (instance *throttlerDefaultImpl) logHz(site callSite, level Level, rate float64, format string, args []interface{}) {
	gate := instance.Registry.gateFor(site, rate)

	elapsed, admitted := gate.admit()
	if !admitted {
		// the intended throttling outcome, not a failure
		return
	}

	instance.emitAdmitted(level, elapsed, format, args)
}

// emitAdmitted formats and forwards an emission that already won its
// admission slot. Formatting cost is only ever paid here.
func (instance *throttlerDefaultImpl) emitAdmitted(level Level, elapsed uint64, format string, args []interface{}) {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	instance.currentSink().Emit(level, message)

	if instance.Config.TrackHistory {
		instance.HistoryData.record(AdmissionRecord{
			Level:     level,
			Message:   message,
			ElapsedNS: elapsed,
		})
	}
}

func (instance *throttlerDefaultImpl) currentSink() Sink {
	instance.sinkLock.RLock()
	defer instance.sinkLock.RUnlock()
	return instance.sink
}

func (instance *throttlerDefaultImpl) SetSink(sink Sink) {
	if sink == nil {
		sink = NewDefaultSink()
	}
	instance.sinkLock.Lock()
	defer instance.sinkLock.Unlock()
	instance.sink = sink
}

func (instance *throttlerDefaultImpl) Bind(rate float64) BoundThrottler {
	proxy := boundThrottlerProxy{
		proxied: instance,
		gate:    NewGate(rate, instance.Clock),
	}
	return &proxy
}

func (instance *throttlerDefaultImpl) History() []AdmissionRecord {
	if !instance.Config.TrackHistory {
		return nil
	}
	return instance.HistoryData.snapshot()
}

type boundThrottlerProxy struct {
	proxied *throttlerDefaultImpl
	gate    *Gate
}

func (instance *boundThrottlerProxy) Error(format string, args ...interface{}) {
	instance.log(LevelError, format, args)
}

func (instance *boundThrottlerProxy) Warn(format string, args ...interface{}) {
	instance.log(LevelWarning, format, args)
}

func (instance *boundThrottlerProxy) Info(format string, args ...interface{}) {
	instance.log(LevelInfo, format, args)
}

func (instance *boundThrottlerProxy) Debug(format string, args ...interface{}) {
	instance.log(LevelDebug, format, args)
}

func (instance *boundThrottlerProxy) Trace(format string, args ...interface{}) {
	instance.log(LevelTrace, format, args)
}

func (instance *boundThrottlerProxy) Gate() *Gate {
	return instance.gate
}

func (instance *boundThrottlerProxy) log(level Level, format string, args []interface{}) {
	elapsed, admitted := instance.gate.admit()
	if !admitted {
		return
	}

	instance.proxied.emitAdmitted(level, elapsed, format, args)
}
