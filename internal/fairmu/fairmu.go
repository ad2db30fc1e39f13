// Package fairmu provides a mutual exclusion lock that hands the lock to
// waiters in strict arrival (FIFO) order. Mutex implements sync.Locker,
// so it can stand in wherever sync.Mutex is accepted.
//
// sync.Mutex already has a starvation mode that kicks in when a waiter
// has been blocked for more than 1ms, but below that threshold waiters
// can barge past each other freely. For workloads where even brief
// barging is unacceptable, fairmu trades throughput for a hard FIFO
// guarantee. Do not use it where sync.Mutex would do.
package fairmu

import "sync"

// Mutex is a mutual exclusion lock with FIFO handoff.
// The zero value is an unlocked mutex.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	once sync.Once

	// token holds the lock token while nobody holds the lock.
	// A successful take from token acquires the lock.
	token chan struct{}

	// waiters is the FIFO queue of goroutines waiting for the lock.
	// It is safe for concurrent use.
	waiters ring[waiter]

	// pool recycles waiter channels. A long-lived mutex can be locked
	// millions of times; without the pool that's an allocation per Lock.
	pool sync.Pool
}

// waiter is one Lock call's slot in the queue. It is signalled when the
// lock has been handed to that call.
type waiter chan struct{}

// init makes the zero value usable, like sync.Mutex.
func (m *Mutex) init() {
	m.once.Do(func() {
		m.token = make(chan struct{}, 1)
		m.pool.New = func() any {
			return waiter(make(chan struct{}, 1))
		}
		// A new mutex starts life unlocked.
		m.token <- struct{}{}
	})
}

// Lock locks m. If the lock is already held, the calling goroutine
// blocks until every goroutine that called Lock before it has held and
// released the lock.
func (m *Mutex) Lock() {
	m.init()
	w := m.pool.Get().(waiter)
	m.waiters.enqueue(w)

	for {
		select {
		case <-m.token:
			// We hold the token, but it belongs to whoever is at
			// the front of the queue. Hand it over, then keep
			// waiting for our own slot to be signalled. The front
			// waiter may be us, in which case the second case
			// fires on the next pass.
			front, ok := m.waiters.dequeue()
			if !ok {
				// A token with no waiters cannot happen: we
				// enqueued before entering the loop.
				panic("fairmu: token held with empty wait queue")
			}
			front <- struct{}{}
		case <-w:
			m.pool.Put(w)
			return
		}
	}
}

// Waiters returns the number of goroutines queued for the lock. It is a
// diagnostic snapshot; the value can be stale by the time it is returned.
func (m *Mutex) Waiters() int {
	m.init()
	return m.waiters.size()
}

// Unlock unlocks m. It is a run-time error if m is not locked on entry.
//
// A locked Mutex is not associated with a particular goroutine: one
// goroutine may lock it and arrange for another to unlock it.
func (m *Mutex) Unlock() {
	m.init()
	select {
	case m.token <- struct{}{}:
	default:
		panic("fairmu: unlock of unlocked mutex")
	}
}
