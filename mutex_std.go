//go:build !deadlock && !fairlock

package surelock

import "sync"

// DeadlockEnabled reports whether the deadlock-detecting mutex core is
// compiled in. Build with -tags=deadlock to enable it.
const DeadlockEnabled = false

// mutexCore is the lock implementation selected at build time. The
// default build uses the runtime's mutex.
type mutexCore = sync.Mutex
