package fractal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so slog skips
// attribute formatting on the per-frame debug paths.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger used by fractal and its sub-packages.
// The default logger is silent. Passing nil restores the silent logger.
//
// Levels:
//   - [slog.LevelDebug]: per-frame timings and viewport state
//   - [slog.LevelInfo]: lifecycle (renderer created, window opened, shader compiled)
//   - [slog.LevelWarn]: recovered input problems (non-finite zoom, rejected viewports)
//
// SetLogger may be called concurrently with rendering.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
