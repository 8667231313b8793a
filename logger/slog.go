package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// SlogLogger is the alternative Logger for hosts that already route their logs
// through log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

func (l *SlogLogger) Debugf(msg string, args ...any) {
	l.logger.Debug(fmt.Sprintf(msg, args...))
}

func (l *SlogLogger) Infof(msg string, args ...any) {
	l.logger.Info(fmt.Sprintf(msg, args...))
}

func (l *SlogLogger) Warnf(msg string, args ...any) {
	l.logger.Warn(fmt.Sprintf(msg, args...))
}

func (l *SlogLogger) Errorf(msg string, args ...any) {
	l.logger.Error(fmt.Sprintf(msg, args...))
}

func (l *SlogLogger) Fatalf(msg string, args ...any) {
	l.logger.Error(fmt.Sprintf(msg, args...))
	os.Exit(1)
}

// NewSlogLogger wraps l, or slog.Default() when l is nil.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l}
}
