package toolkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while an image cache logs from other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by toolkit and all its sub-packages.
// By default, toolkit produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent default.
//
// Log levels used by toolkit:
//   - [slog.LevelDebug]: atlas creation, block assignment, mesh sizes
//   - [slog.LevelWarn]: capacity failures, clamped or defaulted shape parameters
//   - [slog.LevelError]: invalid image or atlas IDs, double release,
//     pixel format mismatches, malformed property values
//
// Example:
//
//	toolkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by toolkit.
// Sub-packages (atlas, mesh, primitive, atlas/imagecache) call this so they
// share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
