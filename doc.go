// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipe provides unbounded, block-chunked FIFO pipes for passing
// work and messages between goroutines.
//
// The package offers four variants, one per writer/reader multiplicity:
//
//   - Pipe11: one writer, one reader
//   - Pipe1N: one writer, many readers
//   - PipeN1: many writers, one reader
//   - PipeNN: many writers, many readers
//
// All four share one storage core and differ only in which side takes a
// lock. A side with a single dedicated goroutine takes none.
//
// # Quick Start
//
// Direct constructors:
//
//	p := pipe.NewPipe11[Event](256)
//	p := pipe.NewPipeNN[*Request](128)
//
// Builder API selects the variant from the declared constraints:
//
//	p := pipe.Build[Event](pipe.New(256).SingleWriter().SingleReader()) // → Pipe11
//	p := pipe.Build[Event](pipe.New(256).SingleWriter())                // → Pipe1N
//	p := pipe.Build[Event](pipe.New(256).SingleReader())                // → PipeN1
//	p := pipe.Build[Event](pipe.Default())                              // → PipeNN
//
// # Basic Usage
//
//	p := pipe.NewPipeNN[int](64)
//
//	// Push never blocks and never fails
//	p.Push(42)
//
//	// Pop blocks until an item is available
//	v := p.Pop()
//
//	// Non-blocking variants
//	v, ok := p.PopWait(false)   // (0, false) on empty
//	v, err := p.TryPop()        // (0, ErrWouldBlock) on empty
//
// # Storage
//
// Items are stored in a linked chain of fixed-size blocks. Push fills the
// newest block and links another when it is full; Pop drains the oldest
// block and unlinks it when it is empty. One retired block is kept as a
// spare and handed to the next growth, so a pipe whose backlog oscillates
// within a block boundary allocates nothing in steady state.
//
// Pipes are unbounded: Push grows the chain instead of pushing back on
// the writer. Bound the backlog in application logic when needed.
//
// # Blocking
//
// Readers block on a [FastSemaphore] counting unclaimed items. When items
// are available, or when nobody waits, push and pop cost one atomic add
// each on the semaphore. Only a Pop on an empty pipe parks, and only a
// Push that finds a parked reader signals it.
//
// Pop has no timeout and cannot be cancelled. Poll with TryPop and
// [iox.Backoff] when a bounded wait is needed:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := p.TryPop()
//	    if err == nil {
//	        return v, nil
//	    }
//	    if ctx.Err() != nil {
//	        return zero, ctx.Err()
//	    }
//	    backoff.Wait()
//	}
//
// # Thread Safety
//
// Operations are safe within each variant's multiplicity:
//
//   - Pipe11: one Push goroutine, one Pop goroutine
//   - Pipe1N: one Push goroutine, any number of Pop goroutines
//   - PipeN1: any number of Push goroutines, one Pop goroutine
//   - PipeNN: any number of both
//
// Violating these constraints corrupts the pipe. Clear must not run
// concurrently with Push or Pop on any variant.
//
// # Synchronization Primitives
//
// The package also exports the primitives the pipes are built from:
// [Semaphore] (counting, timed acquire), [Mutex] (timed acquire) and
// [CriticalSection] (short-held, spin then park).
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package pipe
