// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/pipe"
)

// variants returns one constructor per pipe variant.
func variants() []struct {
	name string
	make func(blockSize int) pipe.Pipe[int]
} {
	return []struct {
		name string
		make func(blockSize int) pipe.Pipe[int]
	}{
		{"Pipe11", func(n int) pipe.Pipe[int] { return pipe.NewPipe11[int](n) }},
		{"Pipe1N", func(n int) pipe.Pipe[int] { return pipe.NewPipe1N[int](n) }},
		{"PipeN1", func(n int) pipe.Pipe[int] { return pipe.NewPipeN1[int](n) }},
		{"PipeNN", func(n int) pipe.Pipe[int] { return pipe.NewPipeNN[int](n) }},
	}
}

// =============================================================================
// Basic Operations
// =============================================================================

// TestFIFOOrder pushes across several block boundaries and pops everything
// back in push order.
func TestFIFOOrder(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			p := v.make(4)

			for i := range 37 {
				p.Push(i + 100)
			}
			if p.Len() != 37 {
				t.Fatalf("Len: got %d, want 37", p.Len())
			}

			for i := range 37 {
				got := p.Pop()
				if got != i+100 {
					t.Fatalf("Pop(%d): got %d, want %d", i, got, i+100)
				}
			}
			if p.Len() != 0 {
				t.Fatalf("Len after drain: got %d, want 0", p.Len())
			}
		})
	}
}

// TestConservation interleaves pushes and pops and checks the remainder.
func TestConservation(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			p := v.make(3)
			next := 0 // next value to push
			want := 0 // next value expected from pop
			popped := 0

			for round := range 20 {
				for range round%5 + 2 {
					p.Push(next)
					next++
				}
				for range round % 4 {
					got := p.Pop()
					if got != want {
						t.Fatalf("round %d: Pop: got %d, want %d", round, got, want)
					}
					want++
					popped++
				}
			}

			if p.Len() != next-popped {
				t.Fatalf("Len: got %d, want %d", p.Len(), next-popped)
			}
			for want < next {
				got, err := p.TryPop()
				if err != nil {
					t.Fatalf("TryPop(%d): %v", want, err)
				}
				if got != want {
					t.Fatalf("TryPop: got %d, want %d", got, want)
				}
				want++
			}
		})
	}
}

// TestNonBlockingPollOnEmpty checks that polling an empty pipe returns the
// sentinel and leaves the pipe usable.
func TestNonBlockingPollOnEmpty(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			p := v.make(2)

			for range 3 {
				if got, ok := p.PopWait(false); ok || got != 0 {
					t.Fatalf("PopWait(false) on empty: got (%d, %v), want (0, false)", got, ok)
				}
				if _, err := p.TryPop(); !errors.Is(err, pipe.ErrWouldBlock) {
					t.Fatalf("TryPop on empty: got %v, want ErrWouldBlock", err)
				}
				if _, err := p.Dequeue(); !pipe.IsWouldBlock(err) {
					t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
				}
			}
			if p.Len() != 0 {
				t.Fatalf("Len: got %d, want 0", p.Len())
			}

			p.Push(7)
			if got, ok := p.PopWait(false); !ok || got != 7 {
				t.Fatalf("PopWait(false): got (%d, %v), want (7, true)", got, ok)
			}
			if _, ok := p.PopWait(false); ok {
				t.Fatal("PopWait(false) after drain: got ok, want empty")
			}
		})
	}
}

// TestPopWaitTrue checks that PopWait(true) returns a ready item.
func TestPopWaitTrue(t *testing.T) {
	p := pipe.NewPipe1N[string](2)
	p.Push("a")
	if got, ok := p.PopWait(true); !ok || got != "a" {
		t.Fatalf("PopWait(true): got (%q, %v), want (\"a\", true)", got, ok)
	}
}

// TestEnqueueDequeue checks the lfq-shaped producer/consumer methods.
func TestEnqueueDequeue(t *testing.T) {
	var q interface {
		pipe.Producer[int]
		pipe.Consumer[int]
	} = pipe.NewPipeN1[int](8)

	for i := range 10 {
		v := i * 10
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	for i := range 10 {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if got != i*10 {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, got, i*10)
		}
	}
}

// TestClear checks that Clear empties the pipe and it keeps working.
func TestClear(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			p := v.make(4)
			for i := range 11 {
				p.Push(i)
			}
			p.Pop()

			p.Clear()
			if p.Len() != 0 {
				t.Fatalf("Len after Clear: got %d, want 0", p.Len())
			}
			if _, err := p.TryPop(); !pipe.IsWouldBlock(err) {
				t.Fatalf("TryPop after Clear: got %v, want ErrWouldBlock", err)
			}

			for i := range 9 {
				p.Push(i + 50)
			}
			for i := range 9 {
				if got := p.Pop(); got != i+50 {
					t.Fatalf("Pop after Clear(%d): got %d, want %d", i, got, i+50)
				}
			}
		})
	}
}

// TestBlockSizeOne exercises a grow and a retire on every operation.
func TestBlockSizeOne(t *testing.T) {
	p := pipe.NewPipeNN[int](1)
	if p.BlockSize() != 1 {
		t.Fatalf("BlockSize: got %d, want 1", p.BlockSize())
	}
	for round := range 5 {
		for i := range round + 1 {
			p.Push(i)
		}
		for i := range round + 1 {
			if got := p.Pop(); got != i {
				t.Fatalf("round %d: Pop: got %d, want %d", round, got, i)
			}
		}
	}
}

// TestPointerSentinel checks that an empty poll on a pointer pipe yields nil.
func TestPointerSentinel(t *testing.T) {
	type payload struct{ buf [64]byte }
	p := pipe.NewPipe11[*payload](4)
	p.Push(&payload{})
	if got := p.Pop(); got == nil {
		t.Fatal("Pop: got nil, want payload")
	}
	if got, ok := p.PopWait(false); ok || got != nil {
		t.Fatalf("PopWait(false): got (%v, %v), want (nil, false)", got, ok)
	}
}

// TestInvalidBlockSize checks constructor validation.
func TestInvalidBlockSize(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic for block size 0")
				}
			}()
			v.make(0)
		})
	}
}

// TestErrorClassification checks the iox delegates.
func TestErrorClassification(t *testing.T) {
	if !pipe.IsWouldBlock(pipe.ErrWouldBlock) {
		t.Fatal("IsWouldBlock(ErrWouldBlock): got false")
	}
	if !pipe.IsSemantic(pipe.ErrWouldBlock) {
		t.Fatal("IsSemantic(ErrWouldBlock): got false")
	}
	if !pipe.IsNonFailure(nil) || !pipe.IsNonFailure(pipe.ErrWouldBlock) {
		t.Fatal("IsNonFailure: got false for nil or ErrWouldBlock")
	}
	if pipe.IsNonFailure(errors.New("boom")) {
		t.Fatal("IsNonFailure(boom): got true")
	}
}
