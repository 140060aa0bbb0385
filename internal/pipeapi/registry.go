// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeapi

import "code.hybscloud.com/pipe"

// Registry holds named byte pipes, created on first use.
type Registry struct {
	cs        pipe.CriticalSection
	pipes     map[string]*pipe.PipeNN[[]byte]
	blockSize int
}

// NewRegistry creates an empty registry whose pipes use blockSize slots
// per block.
func NewRegistry(blockSize int) *Registry {
	if blockSize < 1 {
		blockSize = pipe.DefaultBlockSize
	}
	return &Registry{
		pipes:     make(map[string]*pipe.PipeNN[[]byte]),
		blockSize: blockSize,
	}
}

// GetOrCreate returns the pipe called name, creating it if needed.
func (r *Registry) GetOrCreate(name string) *pipe.PipeNN[[]byte] {
	r.cs.Enter()
	defer r.cs.Leave()
	p, ok := r.pipes[name]
	if !ok {
		p = pipe.BuildPipeNN[[]byte](pipe.New(r.blockSize))
		r.pipes[name] = p
	}
	return p
}

// Lookup returns the pipe called name if it exists.
func (r *Registry) Lookup(name string) (*pipe.PipeNN[[]byte], bool) {
	r.cs.Enter()
	defer r.cs.Leave()
	p, ok := r.pipes[name]
	return p, ok
}
