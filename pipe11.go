// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// Pipe11 is a single-writer single-reader unbounded FIFO pipe.
//
// Neither side takes a lock: the writer and the reader each own one
// cursor, and the ready counter orders the item hand-off. Pop blocks only
// when the pipe is empty.
//
// Memory: one block of blockSize slots plus at most one spare; further
// blocks are linked as the backlog grows and retired as it drains.
type Pipe11[T any] struct {
	pipe[T]
}

// NewPipe11 creates a single-writer single-reader pipe.
// Panics if blockSize < 1.
func NewPipe11[T any](blockSize int) *Pipe11[T] {
	p := &Pipe11[T]{}
	p.init(blockSize, shared{}, shared{})
	return p
}
