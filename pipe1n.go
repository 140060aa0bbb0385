// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// Pipe1N is a single-writer multi-reader unbounded FIFO pipe.
//
// Readers serialize on a critical section around the chain pop. The
// writer takes no lock.
type Pipe1N[T any] struct {
	pipe[T]
}

// NewPipe1N creates a single-writer multi-reader pipe.
// Panics if blockSize < 1.
func NewPipe1N[T any](blockSize int) *Pipe1N[T] {
	p := &Pipe1N[T]{}
	p.init(blockSize, shared{}, &exclusive{})
	return p
}
