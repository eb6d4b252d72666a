package gohz

import (
	"fmt"
	"log"
)

// Sink is the external capability that actually records an admitted
// emission. The throttler never observes whether the sink succeeded:
// its own contract ends once Emit has been invoked.
//
// The default implementation logs to the "log" standard module
// via log.Default().
//
// If you want to suppress output entirely while keeping the gating
// behavior you can pass an instance of gohz.NewNoOpSink()
// to the throttler constructor.
type Sink interface {
	Emit(level Level, message string)
}

type defaultSink struct {
}

func (s *defaultSink) Emit(level Level, message string) {
	log.Default().Println(fmt.Sprintf("[%v] %v", level, message))
}

// NewDefaultSink returns the sink used when none is configured,
// writing to the standard library default logger.
func NewDefaultSink() Sink {
	return &defaultSink{}
}

func NewNoOpSink() Sink {
	return &noOpSink{}
}

type noOpSink struct {
}

func (s *noOpSink) Emit(level Level, message string) {
	// NOP
}
