//go:build fairlock && !deadlock

package surelock

import "github.com/surelock-go/surelock/internal/fairmu"

// DeadlockEnabled reports whether the deadlock-detecting mutex core is
// compiled in. Build with -tags=deadlock to enable it.
const DeadlockEnabled = false

// mutexCore is the lock implementation selected at build time. The
// fairlock build hands the lock to waiters in strict arrival order, at a
// significant throughput cost relative to the default core.
type mutexCore = fairmu.Mutex
