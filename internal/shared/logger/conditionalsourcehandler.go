package logger

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// ConditionalSourceHandler wraps another handler and adds source location
// only for the configured levels.
type ConditionalSourceHandler struct {
	handler      slog.Handler
	sourceLevels map[slog.Level]bool
}

func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) *ConditionalSourceHandler {
	sourceLevels := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		sourceLevels[level] = true
	}
	return &ConditionalSourceHandler{
		handler:      handler,
		sourceLevels: sourceLevels,
	}
}

func (h *ConditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ConditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevels[r.Level] && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		if f.File != "" {
			r.AddAttrs(slog.String("source", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)))
		}
	}
	return h.handler.Handle(ctx, r)
}

func (h *ConditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConditionalSourceHandler{
		handler:      h.handler.WithAttrs(attrs),
		sourceLevels: h.sourceLevels,
	}
}

func (h *ConditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &ConditionalSourceHandler{
		handler:      h.handler.WithGroup(name),
		sourceLevels: h.sourceLevels,
	}
}
