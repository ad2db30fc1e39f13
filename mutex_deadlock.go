//go:build deadlock

package surelock

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether the deadlock-detecting mutex core is
// compiled in. Build with -tags=deadlock to enable it.
const DeadlockEnabled = true

func init() {
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
	// A detected deadlock is a synchronization failure the process must
	// not run past, same as any other fatal lock failure.
	deadlock.Opts.OnPotentialDeadlock = func() {
		panicf("potential deadlock detected")
	}
}

// mutexCore is the lock implementation selected at build time. The
// deadlock build wraps every mutex in lock-order and hold-timeout
// detection; it is far slower than the default core and intended for
// development builds only.
type mutexCore = deadlock.Mutex
