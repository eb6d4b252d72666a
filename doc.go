// A small, lock-free, per-call-site throttled logging module.
//
// Features:
//
// - Throttle log emissions from hot loops to a configured rate (in Hz) with a single atomic per call site
//
// - Lock-free admission: no mutex, no blocking, no poisoning, bounded constant-time calls
//
// - First call from every call site always logs, so you never miss the first occurrence of a condition
//
// - Rate <= 0 acts as a "log at most once" escape hatch
//
// - Pluggable monotonic clock with a precise and a coarse (cached, lower overhead) implementation
//
// - Pluggable sinks with ready-made adapters for the standard log package, zap, logrus and zerolog
//
// - Optional capped admission history for diagnostics
//
// - Thread safe
package gohz
