package gohz

import "go.uber.org/zap"

// zapSink forwards admitted emissions to a zap logger.
// Trace has no zap equivalent and is mapped to Debug.
type zapSink struct {
	logger *zap.Logger
}

// NewZapSink returns a Sink emitting through the given zap logger.
func NewZapSink(logger *zap.Logger) Sink {
	return &zapSink{logger: logger}
}

func (s *zapSink) Emit(level Level, message string) {
	switch level {
	case LevelError:
		s.logger.Error(message)
	case LevelWarning:
		s.logger.Warn(message)
	case LevelInfo:
		s.logger.Info(message)
	default:
		s.logger.Debug(message)
	}
}
