package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler slog.Handler
	levels  map[slog.Level]struct{}
}

// NewConditionalSourceHandler wraps handler and attaches the caller's source
// location only to records whose level is listed. The wrapped handler must
// not set AddSource itself.
func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	set := make(map[slog.Level]struct{}, len(levels))
	for _, level := range levels {
		set[level] = struct{}{}
	}
	return &conditionalSourceHandler{handler: handler, levels: set}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if _, ok := h.levels[r.Level]; ok {
		if src := callerSource(r.PC); src != nil {
			r.AddAttrs(slog.Any(slog.SourceKey, src))
		}
	}
	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithAttrs(attrs), levels: h.levels}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithGroup(name), levels: h.levels}
}

// callerSource resolves the program counter captured by slog for the record.
func callerSource(pc uintptr) *slog.Source {
	if pc == 0 {
		return nil
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	return &slog.Source{Function: f.Function, File: f.File, Line: f.Line}
}
