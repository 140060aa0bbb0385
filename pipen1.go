// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// PipeN1 is a multi-writer single-reader unbounded FIFO pipe.
//
// Writers serialize on a critical section around the chain push. The
// reader takes no lock.
type PipeN1[T any] struct {
	pipe[T]
}

// NewPipeN1 creates a multi-writer single-reader pipe.
// Panics if blockSize < 1.
func NewPipeN1[T any](blockSize int) *PipeN1[T] {
	p := &PipeN1[T]{}
	p.init(blockSize, &exclusive{}, shared{})
	return p
}
