package gohz

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	// tests start away from zero so that an accidental
	// "elapsed == absolute timestamp" confusion cannot pass.
	defaultTestClockStart = uint64(1_000_000_000_000)

	defaultTestRate = 1.0
)

type capturedEmission struct {
	Level   Level
	Message string
}

// testSink captures emissions for assertions.
// It is safe for use from the contention tests.
type testSink struct {
	Lock      sync.Mutex
	Emissions []capturedEmission
}

func (s *testSink) Emit(level Level, message string) {
	s.Lock.Lock()
	defer s.Lock.Unlock()
	s.Emissions = append(s.Emissions, capturedEmission{
		Level:   level,
		Message: message,
	})
}

func (s *testSink) Count() int {
	s.Lock.Lock()
	defer s.Lock.Unlock()
	return len(s.Emissions)
}

func (s *testSink) Last() capturedEmission {
	s.Lock.Lock()
	defer s.Lock.Unlock()
	if len(s.Emissions) == 0 {
		panic("no emissions captured")
	}
	return s.Emissions[len(s.Emissions)-1]
}

func (s *testSink) AssertEmissions(t *testing.T, expected ...capturedEmission) {
	s.Lock.Lock()
	defer s.Lock.Unlock()
	assert.Equal(t, expected, s.Emissions)
}

type testableThrottler struct {
	Instance *throttlerDefaultImpl
	Clock    *ManualClock
	Sink     *testSink
}

// TimeTravel moves the manual clock forward by the given amount.
func (ti *testableThrottler) TimeTravel(d time.Duration) {
	ti.Clock.Advance(d)
}

func buildTestThrottler(t *testing.T, configurer func(config *Config)) *testableThrottler {
	ti := testableThrottler{
		Clock: NewManualClock(defaultTestClockStart),
		Sink:  &testSink{},
	}

	config := Config{
		Clock: ti.Clock,
		Sink:  ti.Sink,
	}

	if configurer != nil {
		configurer(&config)
	}

	instance, err := New(&config)

	if t != nil {
		assert.NotNil(t, instance)
		assert.Nil(t, err)
	}

	ti.Instance = instance.(*throttlerDefaultImpl)

	return &ti
}

func buildDefaultTestThrottler(t *testing.T) *testableThrottler {
	return buildTestThrottler(t, nil)
}
