package gohz

import "fmt"

var (
	// ErrInvalidConfig is a sentinel for the error returned by New
	// when the provided configuration cannot be accepted.
	//
	// Note that a non-positive rate is not a configuration error:
	// it is the documented "log at most once" behavior.
	ErrInvalidConfig = &InvalidConfig{}
)

// InvalidConfig is returned by New when the provided configuration
// cannot be accepted.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("InvalidConfig: field %v is not acceptable (%v)", e.Field, e.Reason)
}

func (e *InvalidConfig) Is(tgt error) bool {
	_, ok := tgt.(*InvalidConfig)
	return ok
}
