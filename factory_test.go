package gohz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterfacesAreCorrectlyImplemented(t *testing.T) {

	isThrottler := func(i Throttler) {}
	isBoundThrottler := func(i BoundThrottler) {}
	isClock := func(i Clock) {}
	isSink := func(i Sink) {}

	instance, _ := New(&Config{})

	isThrottler(instance)
	isBoundThrottler(instance.Bind(1.0))

	isClock(NewPreciseClock())
	isClock(NewCoarseClock(0))
	isClock(NewManualClock(0))

	isSink(NewDefaultSink())
	isSink(NewNoOpSink())
}

func TestFactoryBuilderWithMinimalParams(t *testing.T) {
	instance, err := New(&Config{})

	assert.Nil(t, err)
	assert.NotNil(t, instance)
}

func TestFactoryBuilderWithNilConfig(t *testing.T) {
	instance, err := New(nil)

	assert.Nil(t, err)
	assert.NotNil(t, instance)
}

func TestFactoryAppliesDefaults(t *testing.T) {
	instance, err := New(&Config{})
	assert.Nil(t, err)

	impl := instance.(*throttlerDefaultImpl)
	assert.Same(t, defaultClock, impl.Clock)
	assert.IsType(t, &defaultSink{}, impl.currentSink())
	assert.False(t, impl.Config.TrackHistory)
	assert.Nil(t, impl.HistoryData)
	assert.Nil(t, instance.History())
}

func TestFactoryRejectsNegativeHistorySize(t *testing.T) {
	instance, err := New(&Config{
		HistorySize: -1,
	})

	assert.Nil(t, instance)
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	var details *InvalidConfig
	assert.True(t, errors.As(err, &details))
	assert.Equal(t, "HistorySize", details.Field)
	assert.Contains(t, err.Error(), "HistorySize")
}

func TestFactoryEnablesHistory(t *testing.T) {
	instance, err := New(&Config{
		HistorySize: 5,
	})
	assert.Nil(t, err)

	impl := instance.(*throttlerDefaultImpl)
	assert.True(t, impl.Config.TrackHistory)
	assert.Equal(t, 5, impl.Config.HistorySize)
	assert.NotNil(t, impl.HistoryData)
	assert.Equal(t, 5, impl.HistoryData.Capacity)
}
