// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"sync"
	"time"

	"code.hybscloud.com/spin"
)

// Mutex is an exclusive lock with timed acquisition.
//
// Ownership is a token in a one-slot channel, so a timed Acquire parks
// in select instead of polling TryLock.
type Mutex struct {
	ch chan struct{}
}

// NewMutex creates an unlocked mutex.
func NewMutex() *Mutex {
	return &Mutex{ch: make(chan struct{}, 1)}
}

// Acquire takes ownership, waiting up to timeout.
//
// A timeout of 0 polls, [Infinite] waits forever.
// Reports whether the wait timed out without taking ownership.
func (m *Mutex) Acquire(timeout time.Duration) (timedOut bool) {
	select {
	case m.ch <- struct{}{}:
		return false
	default:
	}
	if timeout == 0 {
		return true
	}
	if timeout < 0 {
		m.ch <- struct{}{}
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case m.ch <- struct{}{}:
		return false
	case <-timer.C:
		return true
	}
}

// Release relinquishes ownership.
// Panics if the mutex is not held.
func (m *Mutex) Release() {
	select {
	case <-m.ch:
	default:
		panic("pipe: release of unlocked Mutex")
	}
}

// criticalSectionSpins bounds the TryLock attempts made before parking.
const criticalSectionSpins = 64

// CriticalSection is a short-held exclusive lock without timeout.
//
// Enter spins on TryLock for a bounded number of rounds before parking,
// which keeps hand-offs between goroutines that hold the lock for a few
// nanoseconds (one pipe push or pop) off the scheduler.
//
// The zero value is an unlocked critical section.
type CriticalSection struct {
	mu sync.Mutex
}

// Enter acquires the critical section.
func (cs *CriticalSection) Enter() {
	if cs.mu.TryLock() {
		return
	}
	sw := spin.Wait{}
	for range criticalSectionSpins {
		sw.Once()
		if cs.mu.TryLock() {
			return
		}
	}
	cs.mu.Lock()
}

// Leave releases the critical section.
func (cs *CriticalSection) Leave() {
	cs.mu.Unlock()
}
