package surelock_test

// File helper_test.go contains test helper functionality.

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surelock-go/surelock"
)

// fatalHook captures panic-hook invocations for the duration of a test.
// Its fire method panics after recording, honoring the hook's
// must-not-return contract; requireFatal recovers that panic.
type fatalHook struct {
	mu   sync.Mutex
	msgs []string
}

// trapFatal installs a capturing panic hook and restores the default
// hook when the test finishes. Tests that install a hook must not run in
// parallel, because the hook is process-wide.
func trapFatal(t *testing.T) *fatalHook {
	t.Helper()
	h := &fatalHook{}
	surelock.SetPanicFunc(h.fire)
	t.Cleanup(func() {
		surelock.SetPanicFunc(nil)
	})
	return h
}

func (h *fatalHook) fire(msg string) {
	h.mu.Lock()
	h.msgs = append(h.msgs, msg)
	h.mu.Unlock()
	panic(msg)
}

// fired returns the diagnostics the hook has captured so far.
func (h *fatalHook) fired() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.msgs...)
}

// requireFatal invokes fn and requires that it trips the panic hook.
func requireFatal(t *testing.T, h *fatalHook, fn func()) {
	t.Helper()
	before := len(h.fired())

	func() {
		defer func() {
			_ = recover()
		}()
		fn()
	}()

	require.Greater(t, len(h.fired()), before,
		"expected the fatal hook to be invoked")
}
