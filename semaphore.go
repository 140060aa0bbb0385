// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"slices"
	"sync"
	"time"
)

// Infinite makes Semaphore.Acquire and Mutex.Acquire wait without a deadline.
const Infinite time.Duration = -1

// Semaphore is a counting semaphore with timed acquisition.
//
// Release hands tokens to parked waiters in arrival order before banking
// the remainder, so an arriving Acquire never overtakes a parked one.
// When max > 0, banked tokens saturate at max; max <= 0 means no cap.
//
// Semaphore is the blocking backend of [FastSemaphore]. It may also be
// used on its own.
type Semaphore struct {
	mu      sync.Mutex
	count   int64
	max     int64
	waiters []chan struct{}
}

// NewSemaphore creates a semaphore holding initial tokens.
// Panics if initial < 0.
func NewSemaphore(initial, max int64) *Semaphore {
	if initial < 0 {
		panic("pipe: semaphore initial count must be >= 0")
	}
	if max > 0 && initial > max {
		initial = max
	}
	return &Semaphore{count: initial, max: max}
}

// Acquire takes one token, waiting up to timeout for it.
//
// A timeout of 0 polls, [Infinite] waits forever.
// Reports whether the wait timed out without taking a token.
func (s *Semaphore) Acquire(timeout time.Duration) (timedOut bool) {
	s.mu.Lock()
	if s.count > 0 {
		s.count--
		s.mu.Unlock()
		return false
	}
	if timeout == 0 {
		s.mu.Unlock()
		return true
	}
	ready := make(chan struct{})
	s.waiters = append(s.waiters, ready)
	s.mu.Unlock()

	if timeout < 0 {
		<-ready
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ready:
		return false
	case <-timer.C:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-ready:
		// Handed a token between the timer firing and relocking.
		return false
	default:
	}
	if i := slices.Index(s.waiters, ready); i >= 0 {
		s.waiters = slices.Delete(s.waiters, i, i+1)
	}
	return true
}

// Release adds n tokens, waking up to n parked waiters.
func (s *Semaphore) Release(n int64) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	for ; n > 0 && len(s.waiters) > 0; n-- {
		w := s.waiters[0]
		s.waiters[0] = nil
		s.waiters = s.waiters[1:]
		close(w)
	}
	s.count += n
	if s.max > 0 && s.count > s.max {
		s.count = s.max
	}
	s.mu.Unlock()
}

// Reset drains all banked tokens. Parked waiters stay parked.
func (s *Semaphore) Reset() {
	s.mu.Lock()
	s.count = 0
	s.mu.Unlock()
}

// Count returns the number of banked tokens.
func (s *Semaphore) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Waiters returns the number of goroutines parked in Acquire.
func (s *Semaphore) Waiters() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.waiters)
}
