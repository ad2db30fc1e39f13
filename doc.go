// Package surelock provides the synchronization primitives used across a
// concurrent daemon: a mutual-exclusion lock (Mutex) and a counting
// semaphore (Semaphore), both presented through one uniform contract
// regardless of which lock core the binary was built with.
//
// The interesting part of the package is not the primitives themselves but
// their failure semantics. Native lock implementations disagree wildly about
// failure: some report recoverable error codes, others can only abort or
// silently corrupt state. This package makes the split explicit and uniform:
//
//   - Mutex.Init and NewSemaphore are the only operations that can fail
//     recoverably. They run before any critical section exists, so the
//     caller can still abandon setup cleanly.
//   - Every other operation (Lock, Unlock, Destroy, Down, Up) either
//     succeeds or reports the failure through the process-wide panic hook
//     (see SetPanicFunc) and never returns. Call sites are written on the
//     assumption that these operations cannot fail; a quiet failure would
//     leave the rest of the program running past a broken lock, which is
//     strictly worse than halting.
//
// The mutex core is selected at build time, never at runtime:
//
//   - default: sync.Mutex.
//   - -tags=deadlock: github.com/sasha-s/go-deadlock, with potential
//     deadlocks routed into the panic hook. Intended for development.
//   - -tags=fairlock: a FIFO-handoff mutex (internal/fairmu) for callers
//     that need strict arrival-order wakeup.
//
// Neither primitive supports timeouts, cancellation, try-variants, or
// cross-process use; callers needing bounded waits must layer that on top.
//
// A Mutex is caller-owned storage: allocate it wherever convenient, call
// Init before first use and Destroy after last use. A Semaphore is an
// opaque handle owned by this package, obtained from NewSemaphore.
package surelock
