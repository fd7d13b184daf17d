package dynarray

import (
	"fmt"

	"github.com/pavanmanishd/dynarray/internal/logging"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk represents a single typed memory chunk within an arena.
type chunk[T any] struct {
	buf    []T // backing memory
	offset int // next free element
}

// Arena is a chunked bump allocator for element buffers. Buffers handed to
// arrays are sub-slices of large typed chunks, so many short-lived arrays
// cost a handful of allocations. Individual buffers are never reclaimed:
// Free only clears them; Reset or Release recycle everything at once.
//
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena[T any] struct {
	chunks       []chunk[T]
	chunkLen     int
	currentChunk *chunk[T]
	log          logging.Logger
}

// NewArena creates a new Arena whose chunks hold chunkLen elements.
// If chunkLen <= 0, chunks are sized to DefaultChunkSize bytes.
func NewArena[T any](chunkLen int) *Arena[T] {
	return NewArenaWithLogger[T](chunkLen, nil)
}

// NewArenaWithLogger is NewArena with chunk growth reported at DEBUG level.
func NewArenaWithLogger[T any](chunkLen int, l Logger) *Arena[T] {
	if chunkLen <= 0 {
		chunkLen = max(1, DefaultChunkSize/max(1, ElemSize[T]()))
	}
	a := &Arena[T]{chunkLen: chunkLen, log: logging.OrDefault(l)}
	a.grow(chunkLen)
	return a
}

// Alloc returns a zeroed buffer of n elements carved from the current chunk.
// The buffer's capacity is exactly n, so appending to it never spills into
// a neighbour. Alloc panics after Release or when n <= 0.
func (a *Arena[T]) Alloc(n int) []T {
	if n <= 0 {
		panic(usageErr("Arena.Alloc", ErrNegativeCount, "n %d", n))
	}

	// Fast path: use cached current chunk
	c := a.currentChunk
	if c != nil && c.offset+n <= len(c.buf) {
		start := c.offset
		c.offset += n
		return c.buf[start : start+n : start+n]
	}

	return a.allocSlow(n)
}

// allocSlow handles allocation when the fast path fails.
func (a *Arena[T]) allocSlow(n int) []T {
	a.panicIfReleased("Arena.Alloc")

	// Chunks rewound by Reset are reused before growing.
	for i := range a.chunks {
		c := &a.chunks[i]
		if c.offset+n <= len(c.buf) {
			a.currentChunk = c
			start := c.offset
			c.offset += n
			return c.buf[start : start+n : start+n]
		}
	}

	a.grow(n)
	c := a.currentChunk
	c.offset = n
	return c.buf[0:n:n]
}

// Free clears buf. The memory stays in its chunk until Reset or Release.
func (a *Arena[T]) Free(buf []T) {
	clear(buf)
}

// EnsureCapacity ensures the current chunk has at least n free elements.
// If not, it grows the arena with a new chunk.
func (a *Arena[T]) EnsureCapacity(n int) {
	a.panicIfReleased("Arena.EnsureCapacity")
	c := a.currentChunk
	if c == nil || c.offset+n > len(c.buf) {
		a.grow(n)
	}
}

// Reset clears every chunk and rewinds allocation offsets, keeping the
// chunks for reuse. Buffers handed out before Reset must no longer be used:
// arrays built on them have to be released first.
func (a *Arena[T]) Reset() {
	a.panicIfReleased("Arena.Reset")
	for i := range a.chunks {
		clear(a.chunks[i].buf[:a.chunks[i].offset])
		a.chunks[i].offset = 0
	}
	if len(a.chunks) > 0 {
		a.currentChunk = &a.chunks[0]
	}
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation will panic. Releasing twice is allowed.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.currentChunk = nil
}

// grow appends a new chunk of at least min elements.
func (a *Arena[T]) grow(min int) {
	size := a.chunkLen
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
	a.log.Debugf(logging.NSArena+"new chunk %d of %d elements", len(a.chunks), size)
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased(op string) {
	if a.chunks == nil {
		panic(usageErr(op, ErrReleased, "arena"))
	}
}

func (a *Arena[T]) String() string {
	return fmt.Sprintf("Arena[%d chunks, %d/%d elements]", a.NumChunks(), a.LenInUse(), a.Capacity())
}
