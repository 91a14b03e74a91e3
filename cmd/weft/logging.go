package main

import (
	"log/slog"
	"os"

	"github.com/weftlabs/weft"
)

// slogLogger adapts log/slog to the weft.Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func newLogger(verbose bool) weft.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &slogLogger{
		l: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

func (s *slogLogger) Debug(msg string, keysAndValues ...any) {
	s.l.Debug(msg, keysAndValues...)
}

func (s *slogLogger) Info(msg string, keysAndValues ...any) {
	s.l.Info(msg, keysAndValues...)
}

func (s *slogLogger) Error(msg string, keysAndValues ...any) {
	s.l.Error(msg, keysAndValues...)
}
