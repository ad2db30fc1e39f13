package surelock

import "sync"

// Semaphore is a counting semaphore: a non-negative counter gating access
// to a bounded resource. Down blocks while the counter is zero; Up
// increments it and wakes a waiter. The handle and all of its internal
// state are owned by this package; callers hold only the opaque reference
// returned by NewSemaphore.
//
// Go exposes no native counting semaphore, so Semaphore is built from the
// package's own Mutex plus a wait/notify pair and an explicit counter —
// the same composition used on platforms whose native API lacks one. The
// internal mutex carries the usual contract: if it fails, the failure is
// fatal via the panic hook.
//
// Wake order among multiple blocked Down callers is unspecified. Each Up
// eventually unblocks at least one waiter; nothing stronger (in
// particular, not FIFO order) should be assumed.
type Semaphore struct {
	mu    Mutex
	cond  *sync.Cond
	count uint
}

// NewSemaphore returns a new semaphore whose counter starts at initial.
// It fails recoverably (nil handle, non-nil error) if the internal mutex
// cannot be set up; no cross-goroutine state exists at that point, so the
// caller can abandon setup cleanly.
func NewSemaphore(initial uint) (*Semaphore, error) {
	s := &Semaphore{count: initial}
	if err := s.mu.Init(); err != nil {
		return nil, err
	}
	s.cond = sync.NewCond(&s.mu)
	return s, nil
}

// Down decrements the counter, blocking the calling goroutine until the
// counter is positive. A semaphore created with count N admits exactly N
// Down calls before any Up. Down has no failure path: internal lock
// failure is fatal via the panic hook.
//
// An Up establishes a happens-before relationship with the Down that
// consumes its increment.
func (s *Semaphore) Down() {
	s.mu.Lock()
	for s.count == 0 {
		logf("semaphore down: blocking")
		s.cond.Wait()
	}
	s.count--
	s.mu.Unlock()
}

// Up increments the counter and wakes a blocked Down caller, if any. Up
// has no failure path: internal lock failure is fatal via the panic hook.
func (s *Semaphore) Up() {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
	s.cond.Signal()
}

// Count returns a snapshot of the counter. It is a diagnostic aid: by the
// time Count returns, the value may already be stale. The counter is never
// exposed for direct mutation.
func (s *Semaphore) Count() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Destroy releases the handle's internal state. The handle must not be
// used afterwards. Destroying a semaphore that some goroutine is blocked
// on is a caller error: such waiters will trip the fatal hook when they
// wake, rather than resume silently on torn-down state. Failure to tear
// down the internal mutex is itself fatal.
func (s *Semaphore) Destroy() {
	if s == nil {
		panicf("destroy of nil semaphore")
	}
	s.mu.Destroy()
	// Make abandoned waiters fail loudly instead of sleeping forever:
	// anyone still blocked in Wait relocks the now-destroyed mutex.
	s.cond.Broadcast()
}
