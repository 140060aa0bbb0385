// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// admission serializes the goroutines on one side of a pipe.
type admission interface {
	enter()
	leave()
}

// shared admits every caller. Used on a side with one dedicated goroutine.
type shared struct{}

func (shared) enter() {}
func (shared) leave() {}

// exclusive admits one caller at a time.
type exclusive struct {
	cs CriticalSection
}

func (e *exclusive) enter() { e.cs.Enter() }
func (e *exclusive) leave() { e.cs.Leave() }

// pipe is the core shared by Pipe11, Pipe1N, PipeN1 and PipeNN.
//
// Storage is a block chain. The ready semaphore counts items that no
// reader has claimed yet: Push releases one token after the item is
// stored, Pop acquires one before touching the chain, so a reader never
// finds the chain empty. A Push with nobody waiting banks credit that
// the next Pop consumes without blocking.
type pipe[T any] struct {
	chain chain[T]
	ready *FastSemaphore
	write admission
	read  admission
}

func (p *pipe[T]) init(blockSize int, write, read admission) {
	if blockSize < 1 {
		panic("pipe: block size must be >= 1")
	}
	p.chain.init(uint64(blockSize))
	p.ready = NewFastSemaphore(0, 0)
	p.write = write
	p.read = read
}

// Push appends item. It never blocks on readers.
func (p *pipe[T]) Push(item T) {
	p.write.enter()
	p.chain.push(item)
	p.write.leave()
	p.ready.Release()
}

// Pop removes and returns the oldest item, blocking until one is pushed.
func (p *pipe[T]) Pop() T {
	p.ready.Acquire()
	return p.take()
}

// PopWait removes and returns the oldest item.
//
// With wait set it behaves like Pop. Otherwise it returns (zero-value,
// false) immediately when the pipe is empty, leaving the pipe unchanged.
func (p *pipe[T]) PopWait(wait bool) (T, bool) {
	if wait {
		return p.Pop(), true
	}
	if !p.ready.TryAcquire() {
		var zero T
		return zero, false
	}
	return p.take(), true
}

// TryPop removes and returns the oldest item without blocking.
// Returns (zero-value, ErrWouldBlock) if the pipe is empty.
func (p *pipe[T]) TryPop() (T, error) {
	item, ok := p.PopWait(false)
	if !ok {
		return item, ErrWouldBlock
	}
	return item, nil
}

// Enqueue pushes a copy of *elem. It always returns nil.
func (p *pipe[T]) Enqueue(elem *T) error {
	p.Push(*elem)
	return nil
}

// Dequeue is TryPop.
func (p *pipe[T]) Dequeue() (T, error) {
	return p.TryPop()
}

// take pops one item for a reader holding a ready token.
func (p *pipe[T]) take() T {
	p.read.enter()
	item := p.chain.pop()
	p.read.leave()
	return item
}

// Clear discards all items and releases every block but one.
//
// Readers parked in Pop stay parked. Clear must not run concurrently
// with Push or Pop.
func (p *pipe[T]) Clear() {
	p.write.enter()
	p.read.enter()
	p.ready.drain()
	p.chain.clear()
	p.read.leave()
	p.write.leave()
}

// Len returns the number of items pushed and not yet popped.
func (p *pipe[T]) Len() int {
	return p.chain.len()
}

// BlockSize returns the number of slots per block.
func (p *pipe[T]) BlockSize() int {
	return int(p.chain.size)
}

// Waiting returns the number of readers blocked in Pop.
func (p *pipe[T]) Waiting() int {
	if c := p.ready.Count(); c < 0 {
		return int(-c)
	}
	return 0
}

// Stats returns a snapshot of block allocation and reuse counters.
func (p *pipe[T]) Stats() Stats {
	return p.chain.stats()
}
