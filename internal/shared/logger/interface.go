package logger

import "log/slog"

// Interface defines the logging contract used across layers.
type Interface interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	With(args ...any) Interface
}

type slogAdapter struct {
	logger *slog.Logger
}

// NewLogger wraps a slog.Logger; nil falls back to the package default.
func NewLogger(l *slog.Logger) Interface {
	if l == nil {
		l = Get()
	}
	return &slogAdapter{logger: l}
}

// Default returns an Interface backed by the package-level logger.
func Default() Interface {
	return &slogAdapter{logger: Get()}
}

func (s *slogAdapter) Debugw(msg string, keysAndValues ...any) {
	s.logger.Debug(msg, keysAndValues...)
}

func (s *slogAdapter) Infow(msg string, keysAndValues ...any) {
	s.logger.Info(msg, keysAndValues...)
}

func (s *slogAdapter) Warnw(msg string, keysAndValues ...any) {
	s.logger.Warn(msg, keysAndValues...)
}

func (s *slogAdapter) Errorw(msg string, keysAndValues ...any) {
	s.logger.Error(msg, keysAndValues...)
}

func (s *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{logger: s.logger.With(args...)}
}
