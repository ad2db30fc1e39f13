package surelock_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/surelock-go/surelock"
)

func TestSemaphoreInitialCount(t *testing.T) {
	h := trapFatal(t)

	// A semaphore created with count N admits exactly N Down calls
	// before any Up.
	for _, n := range []uint{0, 1, 3, 10} {
		sema, err := surelock.NewSemaphore(n)
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			for i := uint(0); i < n; i++ {
				sema.Down()
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("count %d: Down blocked within the initial count", n)
		}

		require.Equal(t, uint(0), sema.Count())
		sema.Destroy()
	}

	require.Empty(t, h.fired())
}

// TestSemaphoreBlocksAtZero: create with count 0; a goroutine's Down
// blocks; Up from the main goroutine releases it; the hook stays quiet.
func TestSemaphoreBlocksAtZero(t *testing.T) {
	h := trapFatal(t)

	sema, err := surelock.NewSemaphore(0)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		sema.Down()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Down returned with a zero counter")
	case <-time.After(50 * time.Millisecond):
	}

	sema.Up()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Down was never woken by Up")
	}

	sema.Destroy()
	require.Empty(t, h.fired())
}

func TestSemaphoreBoundsConcurrency(t *testing.T) {
	const (
		limit      = 3
		goroutines = 20
		iterations = 200
	)

	sema, err := surelock.NewSemaphore(limit)
	require.NoError(t, err)
	defer sema.Destroy()

	var (
		active   atomic.Int32
		violated atomic.Bool
		wg       sync.WaitGroup
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sema.Down()
				if active.Add(1) > limit {
					violated.Store(true)
				}
				active.Add(-1)
				sema.Up()
			}
		}()
	}
	wg.Wait()

	require.False(t, violated.Load(),
		"more than %d goroutines held the semaphore at once", limit)
	require.Equal(t, uint(limit), sema.Count())
}

// TestSemaphoreManyWaiters: every goroutine blocked in Down is eventually
// released given a matching number of Up calls.
func TestSemaphoreManyWaiters(t *testing.T) {
	const waiters = 16

	sema, err := surelock.NewSemaphore(0)
	require.NoError(t, err)
	defer sema.Destroy()

	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sema.Down()
		}()
	}

	for i := 0; i < waiters; i++ {
		sema.Up()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("some Down callers were never woken")
	}

	require.Equal(t, uint(0), sema.Count())
}

func TestSemaphoreCount(t *testing.T) {
	sema, err := surelock.NewSemaphore(2)
	require.NoError(t, err)
	defer sema.Destroy()

	require.Equal(t, uint(2), sema.Count())
	sema.Down()
	require.Equal(t, uint(1), sema.Count())
	sema.Up()
	sema.Up()
	require.Equal(t, uint(3), sema.Count())
}

func TestSemaphoreDestroyTwice(t *testing.T) {
	h := trapFatal(t)

	sema, err := surelock.NewSemaphore(1)
	require.NoError(t, err)

	sema.Destroy()
	requireFatal(t, h, sema.Destroy)
}
