// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// PipeNN is a multi-writer multi-reader unbounded FIFO pipe.
//
// Writers and readers each serialize on their own critical section, so a
// push and a pop still proceed in parallel.
type PipeNN[T any] struct {
	pipe[T]
}

// NewPipeNN creates a multi-writer multi-reader pipe.
// Panics if blockSize < 1.
func NewPipeNN[T any](blockSize int) *PipeNN[T] {
	p := &PipeNN[T]{}
	p.init(blockSize, &exclusive{}, &exclusive{})
	return p
}
