package surelock

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

var (
	pkgLog     atomic.Pointer[slog.Logger]
	logEnabled atomic.Bool
)

// SetLogger sets the logger used for the debug trace of lock transitions
// and for fatal diagnostics. Passing nil restores the default, which
// discards everything. Most callers never need this; it exists for
// debugging lock ordering in the surrounding daemon.
func SetLogger(l *slog.Logger) {
	pkgLog.Store(l)
	logEnabled.Store(l != nil)
}

func logger() *slog.Logger {
	if l := pkgLog.Load(); l != nil {
		return l
	}
	return discardLogger
}

// logf emits a debug-level trace line. It is a no-op unless a logger has
// been installed, so the check stays off the lock hot path.
func logf(format string, args ...any) {
	if !logEnabled.Load() {
		return
	}
	logger().Debug(fmt.Sprintf(format, args...))
}

var discardLogger = slog.New(discardHandler{})

// discardHandler drops everything. slog has no built-in discard handler
// at this language version.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
