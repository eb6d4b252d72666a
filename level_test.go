package gohz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "WARNING", LevelWarning.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "TRACE", LevelTrace.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}
