// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// DefaultBlockSize is the block size used by Default.
const DefaultBlockSize = 128

// Options configures pipe creation and variant selection.
type Options struct {
	// Writer/reader constraints (determine the variant)
	singleWriter bool
	singleReader bool

	// Slots per storage block
	blockSize int
}

// Builder creates pipes with fluent configuration.
//
// The builder selects the variant from the declared writer/reader
// multiplicity: the fewer sides that need a lock, the cheaper the pipe.
//
// Example:
//
//	// Pipe11 (one writer goroutine, one reader goroutine)
//	p := pipe.BuildPipe11[Event](pipe.New(256).SingleWriter().SingleReader())
//
//	// PipeNN (default, general purpose)
//	p := pipe.Build[*Job](pipe.Default())
type Builder struct {
	opts Options
}

// New creates a pipe builder with the given block size.
//
// The block size is the number of slots allocated at a time. Larger
// blocks allocate less often under deep backlogs, smaller blocks hold
// less idle memory.
//
// Panics if blockSize < 1.
func New(blockSize int) *Builder {
	if blockSize < 1 {
		panic("pipe: block size must be >= 1")
	}
	return &Builder{opts: Options{blockSize: blockSize}}
}

// Default creates a pipe builder with [DefaultBlockSize].
func Default() *Builder {
	return New(DefaultBlockSize)
}

// SingleWriter declares that only one goroutine will push.
func (b *Builder) SingleWriter() *Builder {
	b.opts.singleWriter = true
	return b
}

// SingleReader declares that only one goroutine will pop.
func (b *Builder) SingleReader() *Builder {
	b.opts.singleReader = true
	return b
}

// BlockSize returns the configured block size.
func (b *Builder) BlockSize() int {
	return b.opts.blockSize
}

// Build creates a Pipe[T] with automatic variant selection.
//
//	SingleWriter + SingleReader → Pipe11 (no locks)
//	SingleWriter only           → Pipe1N (readers locked)
//	SingleReader only           → PipeN1 (writers locked)
//	Neither                     → PipeNN (both sides locked)
func Build[T any](b *Builder) Pipe[T] {
	switch {
	case b.opts.singleWriter && b.opts.singleReader:
		return NewPipe11[T](b.opts.blockSize)
	case b.opts.singleWriter:
		return NewPipe1N[T](b.opts.blockSize)
	case b.opts.singleReader:
		return NewPipeN1[T](b.opts.blockSize)
	default:
		return NewPipeNN[T](b.opts.blockSize)
	}
}

// BuildPipe11 creates a Pipe11 with compile-time type safety.
// Panics if builder is not configured with SingleWriter().SingleReader().
func BuildPipe11[T any](b *Builder) *Pipe11[T] {
	if !b.opts.singleWriter || !b.opts.singleReader {
		panic("pipe: BuildPipe11 requires SingleWriter().SingleReader()")
	}
	return NewPipe11[T](b.opts.blockSize)
}

// BuildPipe1N creates a Pipe1N with compile-time type safety.
// Panics if builder is not configured with SingleWriter() only.
func BuildPipe1N[T any](b *Builder) *Pipe1N[T] {
	if !b.opts.singleWriter || b.opts.singleReader {
		panic("pipe: BuildPipe1N requires SingleWriter() without SingleReader()")
	}
	return NewPipe1N[T](b.opts.blockSize)
}

// BuildPipeN1 creates a PipeN1 with compile-time type safety.
// Panics if builder is not configured with SingleReader() only.
func BuildPipeN1[T any](b *Builder) *PipeN1[T] {
	if b.opts.singleWriter || !b.opts.singleReader {
		panic("pipe: BuildPipeN1 requires SingleReader() without SingleWriter()")
	}
	return NewPipeN1[T](b.opts.blockSize)
}

// BuildPipeNN creates a PipeNN with compile-time type safety.
// Panics if builder has any constraints set.
func BuildPipeNN[T any](b *Builder) *PipeNN[T] {
	if b.opts.singleWriter || b.opts.singleReader {
		panic("pipe: BuildPipeNN requires no constraints")
	}
	return NewPipeNN[T](b.opts.blockSize)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
