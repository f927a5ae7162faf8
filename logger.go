package tasks

import "log/slog"

// SlogLogger adapts a *slog.Logger to the package Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *SlogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *SlogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

// defLogger is the fallback used when no logger is injected.
type defLogger struct{}

func (defLogger) Debug(msg string, args ...any) { slog.Debug(msg, args...) }
func (defLogger) Info(msg string, args ...any)  { slog.Info(msg, args...) }
func (defLogger) Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func (defLogger) Error(msg string, args ...any) { slog.Error(msg, args...) }
