package gohz

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryReusesGatePerCallSite(t *testing.T) {
	registry := gateRegistry{clock: NewManualClock(0)}

	first := registry.gateFor(callSite(1), 1.0)
	second := registry.gateFor(callSite(1), 1.0)
	other := registry.gateFor(callSite(2), 1.0)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, registry.size())
}

func TestRegistryBindsRateOnFirstReach(t *testing.T) {
	registry := gateRegistry{clock: NewManualClock(0)}

	first := registry.gateFor(callSite(1), 10.0)
	second := registry.gateFor(callSite(1), 99999.0)

	assert.Same(t, first, second)
	assert.Equal(t, uint64(100_000_000), second.Interval())
}

func TestRegistryConcurrentFirstReach(t *testing.T) {
	registry := gateRegistry{clock: NewManualClock(0)}

	workers := 16
	gates := make([]*Gate, workers)

	var ready, done sync.WaitGroup
	start := make(chan struct{})

	ready.Add(workers)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer done.Done()
			ready.Done()
			<-start
			gates[i] = registry.gateFor(callSite(7), 1.0)
		}()
	}

	ready.Wait()
	close(start)
	done.Wait()

	// exactly one effective gate per call site, no matter how many
	// goroutines raced to create it
	for i := 1; i < workers; i++ {
		assert.Same(t, gates[0], gates[i])
	}
	assert.Equal(t, 1, registry.size())
}
