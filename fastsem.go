// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"math"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// FastSemaphore is a counting semaphore that only blocks under contention.
//
// The count is an atomic integer:
//
//	count > 0   tokens available (credit banked by Release)
//	count == 0  balanced
//	count < 0   -count goroutines are parked, or about to park, in Acquire
//
// Acquire and Release resolve with one atomic add when a token is
// available or nobody waits. Only an Acquire that drives the count below
// zero parks on the backing [Semaphore], and only a Release that leaves
// the count at or below zero signals it, so every park is matched by
// exactly one signal.
//
// Releases may push the count above max. Acquire discards such extra
// credit until the count is back under max.
type FastSemaphore struct {
	_     pad
	count atomix.Int64
	_     pad
	max   int64
	sem   *Semaphore
}

// NewFastSemaphore creates a semaphore with initial tokens.
// A max <= 0 means the count is unbounded.
// Panics if initial < 0.
func NewFastSemaphore(initial, max int64) *FastSemaphore {
	if initial < 0 {
		panic("pipe: semaphore initial count must be >= 0")
	}
	if max <= 0 {
		max = math.MaxInt64
	}
	s := &FastSemaphore{
		max: max,
		sem: NewSemaphore(0, 0),
	}
	s.count.StoreRelaxed(initial)
	return s
}

// Acquire takes one token, blocking while none is available.
func (s *FastSemaphore) Acquire() {
	c := s.count.AddAcqRel(-1)
	for c >= s.max {
		c = s.count.AddAcqRel(-1)
	}
	if c < 0 {
		s.sem.Acquire(Infinite)
	}
}

// TryAcquire takes one token if available and reports whether it did.
// It never blocks and leaves the count untouched on failure.
func (s *FastSemaphore) TryAcquire() bool {
	sw := spin.Wait{}
	for {
		c := s.count.LoadAcquire()
		if c <= 0 {
			return false
		}
		next := c - 1
		if next >= s.max {
			next = s.max - 1
		}
		if s.count.CompareAndSwapAcqRel(c, next) {
			return true
		}
		sw.Once()
	}
}

// Release returns one token, waking a parked Acquire if there is one.
func (s *FastSemaphore) Release() {
	if s.count.AddAcqRel(1) <= 0 {
		s.sem.Release(1)
	}
}

// Count returns a snapshot of the counter.
func (s *FastSemaphore) Count() int64 {
	return s.count.LoadAcquire()
}

// drain discards banked credit. Parked waiters are not affected.
func (s *FastSemaphore) drain() {
	sw := spin.Wait{}
	for {
		c := s.count.LoadAcquire()
		if c <= 0 || s.count.CompareAndSwapAcqRel(c, 0) {
			return
		}
		sw.Once()
	}
}
