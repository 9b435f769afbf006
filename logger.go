package texutil

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while transforms run on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for texutil and its sub-packages.
// By default texutil produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: one record per transform (operation, size, parameters)
//   - [slog.LevelInfo]: files written by texio
//   - [slog.LevelWarn]: non-fatal collaborator failures (refresh notifier)
//
// Example:
//
//	texutil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by texutil.
// Sub-packages (texio) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logOp records a transform at debug level.
func logOp(op string, img *Image, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := make([]any, 0, len(args)+6)
	attrs = append(attrs, "op", op)
	if img != nil {
		attrs = append(attrs, "width", img.Width(), "height", img.Height(), "levels", img.NumLevels())
	}
	attrs = append(attrs, args...)
	l.Debug("texutil: transform", attrs...)
}
