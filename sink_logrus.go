package gohz

import "github.com/sirupsen/logrus"

// logrusSink forwards admitted emissions to a logrus logger.
// All five levels have a direct logrus equivalent.
type logrusSink struct {
	logger logrus.Ext1FieldLogger
}

// NewLogrusSink returns a Sink emitting through the given logrus
// logger. Both *logrus.Logger and *logrus.Entry are accepted.
func NewLogrusSink(logger logrus.Ext1FieldLogger) Sink {
	return &logrusSink{logger: logger}
}

func (s *logrusSink) Emit(level Level, message string) {
	switch level {
	case LevelError:
		s.logger.Error(message)
	case LevelWarning:
		s.logger.Warning(message)
	case LevelInfo:
		s.logger.Info(message)
	case LevelDebug:
		s.logger.Debug(message)
	default:
		s.logger.Trace(message)
	}
}
