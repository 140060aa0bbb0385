// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// Pipe is the combined writer-reader interface for an unbounded FIFO pipe.
//
// Push never fails and never waits for readers. Pop blocks while the pipe
// is empty; PopWait(false), TryPop and Dequeue poll instead.
//
// Example:
//
//	p := pipe.NewPipeNN[int](64)
//
//	// Writer
//	p.Push(42)
//
//	// Reader
//	v := p.Pop()
//	fmt.Println(v)
type Pipe[T any] interface {
	Writer[T]
	Reader[T]

	// Len returns the number of items pushed and not yet popped.
	Len() int

	// BlockSize returns the number of slots per storage block.
	BlockSize() int

	// Clear discards all items. It must not run concurrently with Push
	// or Pop.
	Clear()
}

// Producer is the enqueue half of the lfq queue interface.
//
// The element is passed by pointer to avoid copying large structs. The
// pipe stores a copy of the pointed-to value.
type Producer[T any] interface {
	Enqueue(elem *T) error
}

// Consumer is the dequeue half of the lfq queue interface.
type Consumer[T any] interface {
	// Dequeue removes and returns an element without blocking.
	// Returns (zero-value, ErrWouldBlock) if the pipe is empty.
	Dequeue() (T, error)
}

// Writer pushes items into a pipe.
//
// Thread safety depends on pipe type:
//   - Pipe11/Pipe1N: single writer only
//   - PipeN1/PipeNN: multiple writers safe
type Writer[T any] interface {
	Producer[T]

	// Push appends a copy of item.
	Push(item T)
}

// Reader pops items from a pipe.
//
// Thread safety depends on pipe type:
//   - Pipe11/PipeN1: single reader only
//   - Pipe1N/PipeNN: multiple readers safe
type Reader[T any] interface {
	Consumer[T]

	// Pop removes and returns the oldest item, blocking while the pipe
	// is empty.
	Pop() T

	// PopWait is Pop when wait is set. Otherwise it returns
	// (zero-value, false) immediately on an empty pipe.
	PopWait(wait bool) (T, bool)

	// TryPop removes and returns the oldest item without blocking.
	// Returns (zero-value, ErrWouldBlock) if the pipe is empty.
	TryPop() (T, error)
}

var (
	_ Pipe[int] = (*Pipe11[int])(nil)
	_ Pipe[int] = (*Pipe1N[int])(nil)
	_ Pipe[int] = (*PipeN1[int])(nil)
	_ Pipe[int] = (*PipeNN[int])(nil)
)
