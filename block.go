// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// block is a fixed run of slots linked to the next block.
type block[T any] struct {
	slots []T
	next  *block[T]
}

func newBlock[T any](size uint64) *block[T] {
	return &block[T]{slots: make([]T, size)}
}

// chain is the unsynchronized storage core of a pipe.
//
// Items live in a singly linked list of blocks. The writer appends at
// tail in the last block, the reader removes at head in the first block.
// Both cursors are logical indices; the slot is cursor % size.
//
// The chain never holds fewer than one block. When the writer fills the
// last slot of a block it links a new one immediately, so a reader that
// empties a block always finds its successor. A retired block is kept as
// the spare if the spare is free and reused by the next growth.
//
// push must be serialized among writers and pop among readers by the
// caller. A writer and a reader may run concurrently; pop must only be
// called when an item is known to be present.
type chain[T any] struct {
	_     pad
	head  atomix.Uint64 // Next slot to pop
	first *block[T]
	_     pad
	tail  atomix.Uint64 // Next slot to push
	last  *block[T]
	_     pad
	spare atomic.Pointer[block[T]]
	size  uint64

	allocs  atomix.Uint64
	reuses  atomix.Uint64
	retires atomix.Uint64
}

func (c *chain[T]) init(size uint64) {
	b := newBlock[T](size)
	c.size = size
	c.first = b
	c.last = b
	c.allocs.StoreRelaxed(1)
}

func (c *chain[T]) push(item T) {
	tail := c.tail.LoadRelaxed()
	i := tail % c.size
	c.last.slots[i] = item
	if i == c.size-1 {
		c.grow()
	}
	c.tail.StoreRelease(tail + 1)
}

func (c *chain[T]) pop() T {
	head := c.head.LoadRelaxed()
	i := head % c.size
	b := c.first
	item := b.slots[i]
	var zero T
	b.slots[i] = zero
	if i == c.size-1 {
		c.first = b.next
		b.next = nil
		c.shrink(b)
	}
	c.head.StoreRelease(head + 1)
	return item
}

// grow appends a block after last, preferring the spare.
func (c *chain[T]) grow() {
	b := c.spare.Swap(nil)
	if b != nil {
		c.reuses.AddAcqRel(1)
	} else {
		b = newBlock[T](c.size)
		c.allocs.AddAcqRel(1)
	}
	c.last.next = b
	c.last = b
}

// shrink retires an emptied block. Its slots are already zeroed.
func (c *chain[T]) shrink(b *block[T]) {
	c.retires.AddAcqRel(1)
	c.spare.CompareAndSwap(nil, b)
}

// clear drops every block but the first and rewinds both cursors.
// No push or pop may run concurrently.
func (c *chain[T]) clear() {
	b := c.first
	clear(b.slots)
	for n := b.next; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	b.next = nil
	c.last = b
	c.spare.Store(nil)
	c.head.StoreRelease(0)
	c.tail.StoreRelease(0)
}

func (c *chain[T]) len() int {
	head := c.head.LoadAcquire()
	tail := c.tail.LoadAcquire()
	return int(tail - head)
}

// Stats is a snapshot of a pipe's block traffic.
type Stats struct {
	Allocated uint64 // Blocks allocated, including the initial one
	Reused    uint64 // Growths served by the spare block
	Retired   uint64 // Blocks emptied by readers
	Spare     bool   // A spare block is held
}

func (c *chain[T]) stats() Stats {
	return Stats{
		Allocated: c.allocs.LoadAcquire(),
		Reused:    c.reuses.LoadAcquire(),
		Retired:   c.retires.LoadAcquire(),
		Spare:     c.spare.Load() != nil,
	}
}
