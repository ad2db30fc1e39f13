package fairmu

import "sync"

// ring is a FIFO queue backed by a growable circular buffer. Each method
// is O(1) amortized. It is safe for concurrent use.
type ring[T any] struct {
	mu   sync.Mutex
	buf  []T
	head int
	n    int
}

// enqueue adds v at the back of the queue.
func (r *ring[T]) enqueue(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.n)%len(r.buf)] = v
	r.n++
}

// dequeue removes and returns the front of the queue.
func (r *ring[T]) dequeue() (v T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.n == 0 {
		return v, false
	}

	var zero T
	v = r.buf[r.head]
	r.buf[r.head] = zero // don't pin the waiter channel
	r.head = (r.head + 1) % len(r.buf)
	r.n--

	return v, true
}

// size returns the number of queued items.
func (r *ring[T]) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.n
}

// grow doubles the buffer, compacting the live window to the front.
// Caller must hold r.mu.
func (r *ring[T]) grow() {
	newCap := len(r.buf) * 2
	if newCap < 8 {
		newCap = 8
	}

	buf := make([]T, newCap)
	for i := 0; i < r.n; i++ {
		buf[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = buf
	r.head = 0
}
