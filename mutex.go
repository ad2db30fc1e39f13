package surelock

import (
	"errors"
	"sync/atomic"
)

// ErrInitialized is returned by Mutex.Init if the mutex is already
// initialized. Init on live storage without an intervening Destroy is a
// caller bug, but it is detected before any critical section exists, so it
// is reported on the recoverable path rather than through the panic hook.
var ErrInitialized = errors.New("surelock: mutex is already initialized")

// Mutex lifecycle states, kept in Mutex.state. The zero value is stateRaw,
// so an unprepared Mutex is distinguishable from an initialized one.
const (
	stateRaw  int32 = iota // not initialized (or destroyed)
	stateIdle              // initialized, unlocked
	stateHeld              // initialized, locked
)

// Mutex is a mutual exclusion lock over a build-time-selected core.
// The caller owns the storage: allocate a Mutex anywhere, call Init before
// first use, and Destroy after last use. Unlike sync.Mutex, the zero value
// is not ready for use.
//
// Lock, Unlock and Destroy never report failure to the caller; any failure
// is routed through the panic hook (see SetPanicFunc). Only Init can fail
// recoverably. See the package documentation for the rationale.
//
// A Mutex must not be copied after Init.
type Mutex struct {
	core  mutexCore
	state atomic.Int32
}

// Init prepares m for use, in the unlocked state. It is the one mutex
// operation with a recoverable failure: at this point no critical section
// exists yet, so the caller can still abandon setup. Init must not be
// called again without an intervening Destroy.
func (m *Mutex) Init() error {
	if !m.state.CompareAndSwap(stateRaw, stateIdle) {
		return ErrInitialized
	}
	return nil
}

// Lock acquires m, blocking until it is available. Locking a mutex that
// was never initialized (or was destroyed) is fatal.
//
// Lock establishes a happens-before relationship with the previous
// holder's Unlock. No fairness beyond eventual acquisition is guaranteed;
// build with -tags=fairlock for strict FIFO handoff.
func (m *Mutex) Lock() {
	if m.state.Load() == stateRaw {
		panicf("lock of uninitialized mutex")
	}
	logf("mutex lock: before")
	m.core.Lock()
	m.state.Store(stateHeld)
	logf("mutex lock: after")
}

// Unlock releases m, which must be held by the caller. Unlocking a mutex
// that is not locked is fatal.
func (m *Mutex) Unlock() {
	logf("mutex unlock: before")
	if !m.state.CompareAndSwap(stateHeld, stateIdle) {
		panicf("unlock of unlocked mutex")
	}
	m.core.Unlock()
	logf("mutex unlock: after")
}

// Destroy tears down an initialized, unlocked mutex. The storage may be
// reused via a later Init. Destroying a locked or uninitialized mutex is
// fatal: callers are structured never to check a destroy result, so a
// quiet failure here would mask corruption. Destroying a mutex that
// another goroutine is blocked on is a caller error with no defined
// behavior.
func (m *Mutex) Destroy() {
	switch {
	case m.state.CompareAndSwap(stateIdle, stateRaw):
	case m.state.Load() == stateHeld:
		panicf("destroy of locked mutex")
	default:
		panicf("destroy of uninitialized mutex")
	}
}
