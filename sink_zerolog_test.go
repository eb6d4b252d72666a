package gohz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologSinkLevelMapping(t *testing.T) {
	var buffer bytes.Buffer
	logger := zerolog.New(&buffer)

	instance := NewZerologSink(logger)

	instance.Emit(LevelError, "e")
	instance.Emit(LevelWarning, "w")
	instance.Emit(LevelInfo, "i")
	instance.Emit(LevelDebug, "d")
	instance.Emit(LevelTrace, "t")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Len(t, lines, 5)

	assert.Contains(t, lines[0], `"level":"error"`)
	assert.Contains(t, lines[0], `"message":"e"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
	assert.Contains(t, lines[2], `"level":"info"`)
	assert.Contains(t, lines[3], `"level":"debug"`)
	assert.Contains(t, lines[4], `"level":"trace"`)
	assert.Contains(t, lines[4], `"message":"t"`)
}
