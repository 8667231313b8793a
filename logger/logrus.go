package logger

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger routes the codec logs into a logrus logger or entry, keeping any
// fields attached to it.
type LogrusLogger struct {
	logger logrus.FieldLogger
}

func (l *LogrusLogger) Debugf(msg string, args ...any) {
	l.logger.Debugf(msg, args...)
}

func (l *LogrusLogger) Infof(msg string, args ...any) {
	l.logger.Infof(msg, args...)
}

func (l *LogrusLogger) Warnf(msg string, args ...any) {
	l.logger.Warnf(msg, args...)
}

func (l *LogrusLogger) Errorf(msg string, args ...any) {
	l.logger.Errorf(msg, args...)
}

func (l *LogrusLogger) Fatalf(msg string, args ...any) {
	l.logger.Fatalf(msg, args...)
}

// NewLogrusLogger wraps l, or the logrus standard logger when l is nil.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusLogger{logger: l}
}
