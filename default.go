package gohz

// std is the throttler behind the package-level functions, for
// callers who want drop-in throttled logging without building an
// instance. It writes to the standard library logger until
// SetDefaultSink is called.
var std = newDefaultThrottler()

func newDefaultThrottler() *throttlerDefaultImpl {
	instance, err := New(nil)
	if err != nil {
		// the zero configuration is always valid
		panic(err)
	}
	return instance.(*throttlerDefaultImpl)
}

// Default returns the Throttler used by the package-level functions.
func Default() Throttler {
	return std
}

// SetDefaultSink redirects the package-level functions to the given
// sink. Existing call-site gates keep their state: only the
// destination of admitted emissions changes.
func SetDefaultSink(sink Sink) {
	std.SetSink(sink)
}

// ErrorHz logs at LevelError at most rate times per second from this
// call site, using the package default throttler.
// The first call always logs.
func ErrorHz(rate float64, format string, args ...interface{}) {
	std.logHz(currentCallSite(), LevelError, rate, format, args)
}

// WarnHz logs at LevelWarning at most rate times per second from this
// call site, using the package default throttler.
// The first call always logs.
func WarnHz(rate float64, format string, args ...interface{}) {
	std.logHz(currentCallSite(), LevelWarning, rate, format, args)
}

// InfoHz logs at LevelInfo at most rate times per second from this
// call site, using the package default throttler.
// The first call always logs.
func InfoHz(rate float64, format string, args ...interface{}) {
	std.logHz(currentCallSite(), LevelInfo, rate, format, args)
}

// DebugHz logs at LevelDebug at most rate times per second from this
// call site, using the package default throttler.
// The first call always logs.
func DebugHz(rate float64, format string, args ...interface{}) {
	std.logHz(currentCallSite(), LevelDebug, rate, format, args)
}

// TraceHz logs at LevelTrace at most rate times per second from this
// call site, using the package default throttler.
// The first call always logs.
func TraceHz(rate float64, format string, args ...interface{}) {
	std.logHz(currentCallSite(), LevelTrace, rate, format, args)
}

// LogHz logs at the given level at most rate times per second from
// this call site, using the package default throttler.
// The first call always logs.
func LogHz(level Level, rate float64, format string, args ...interface{}) {
	std.logHz(currentCallSite(), level, rate, format, args)
}
