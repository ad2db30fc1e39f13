package surelock

import (
	"fmt"
	"sync/atomic"
)

// PanicFunc is the process-wide fatal-error hook. It receives a
// human-readable diagnostic and must not return: the calling goroutine
// cannot safely proceed past a failed synchronization operation, because
// the invariants protecting concurrent state can no longer be trusted.
type PanicFunc func(msg string)

var panicFn atomic.Value // of PanicFunc

// SetPanicFunc installs fn as the fatal-error hook. Passing nil restores
// the default hook, which logs the diagnostic (see SetLogger) and panics.
//
// The hook is expected to terminate the process or at least the calling
// goroutine. If a hook returns anyway, the package panics on its behalf;
// there is no configuration that lets execution continue past a fatal
// synchronization failure.
func SetPanicFunc(fn PanicFunc) {
	panicFn.Store(fn)
}

// panicf reports an unrecoverable failure through the hook. It never
// returns.
func panicf(format string, args ...any) {
	msg := "surelock: " + fmt.Sprintf(format, args...)
	logger().Error(msg)
	if fn, ok := panicFn.Load().(PanicFunc); ok && fn != nil {
		fn(msg)
	}
	// Reached when no hook is installed, or when an installed hook
	// violated the must-not-return contract.
	panic(msg)
}
