// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe_test

import (
	"testing"

	"code.hybscloud.com/pipe"
)

// =============================================================================
// Builder
// =============================================================================

func TestBuildSelectsVariant(t *testing.T) {
	if _, ok := pipe.Build[int](pipe.New(8).SingleWriter().SingleReader()).(*pipe.Pipe11[int]); !ok {
		t.Fatal("SingleWriter+SingleReader: want *Pipe11")
	}
	if _, ok := pipe.Build[int](pipe.New(8).SingleWriter()).(*pipe.Pipe1N[int]); !ok {
		t.Fatal("SingleWriter: want *Pipe1N")
	}
	if _, ok := pipe.Build[int](pipe.New(8).SingleReader()).(*pipe.PipeN1[int]); !ok {
		t.Fatal("SingleReader: want *PipeN1")
	}
	if _, ok := pipe.Build[int](pipe.New(8)).(*pipe.PipeNN[int]); !ok {
		t.Fatal("no constraints: want *PipeNN")
	}
}

func TestBuildTyped(t *testing.T) {
	if p := pipe.BuildPipe11[int](pipe.New(3).SingleWriter().SingleReader()); p.BlockSize() != 3 {
		t.Fatalf("BuildPipe11 BlockSize: got %d, want 3", p.BlockSize())
	}
	if p := pipe.BuildPipe1N[int](pipe.New(5).SingleWriter()); p.BlockSize() != 5 {
		t.Fatalf("BuildPipe1N BlockSize: got %d, want 5", p.BlockSize())
	}
	if p := pipe.BuildPipeN1[int](pipe.New(7).SingleReader()); p.BlockSize() != 7 {
		t.Fatalf("BuildPipeN1 BlockSize: got %d, want 7", p.BlockSize())
	}
	if p := pipe.BuildPipeNN[int](pipe.Default()); p.BlockSize() != pipe.DefaultBlockSize {
		t.Fatalf("BuildPipeNN BlockSize: got %d, want %d", p.BlockSize(), pipe.DefaultBlockSize)
	}
}

func TestBuildTypedRejectsMismatch(t *testing.T) {
	cases := []struct {
		name  string
		build func()
	}{
		{"Pipe11 without SingleReader", func() { pipe.BuildPipe11[int](pipe.New(8).SingleWriter()) }},
		{"Pipe1N with SingleReader", func() { pipe.BuildPipe1N[int](pipe.New(8).SingleWriter().SingleReader()) }},
		{"PipeN1 with SingleWriter", func() { pipe.BuildPipeN1[int](pipe.New(8).SingleWriter().SingleReader()) }},
		{"PipeNN with constraint", func() { pipe.BuildPipeNN[int](pipe.New(8).SingleReader()) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			c.build()
		})
	}
}

func TestNewInvalidBlockSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for block size 0")
		}
	}()
	pipe.New(0)
}
