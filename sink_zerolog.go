package gohz

import "github.com/rs/zerolog"

// zerologSink forwards admitted emissions to a zerolog logger.
// All five levels have a direct zerolog equivalent.
type zerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink returns a Sink emitting through the given zerolog
// logger.
func NewZerologSink(logger zerolog.Logger) Sink {
	return &zerologSink{logger: logger}
}

func (s *zerologSink) Emit(level Level, message string) {
	switch level {
	case LevelError:
		s.logger.Error().Msg(message)
	case LevelWarning:
		s.logger.Warn().Msg(message)
	case LevelInfo:
		s.logger.Info().Msg(message)
	case LevelDebug:
		s.logger.Debug().Msg(message)
	default:
		s.logger.Trace().Msg(message)
	}
}
