package dynarray

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// It implements Allocator, so arrays owned by different goroutines can
// draw their buffers from one arena.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a new thread-safe arena whose chunks hold chunkLen elements.
// If chunkLen <= 0, chunks are sized to DefaultChunkSize bytes.
func NewSafeArena[T any](chunkLen int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](chunkLen)}
}

// Alloc thread-safely carves a zeroed buffer of n elements.
func (s *SafeArena[T]) Alloc(n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(n)
}

// Free thread-safely clears buf.
func (s *SafeArena[T]) Free(buf []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(buf)
}

// EnsureCapacity thread-safely ensures the current chunk has at least n free elements.
func (s *SafeArena[T]) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds the arena for reuse.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// SafeArray guards one Array with a mutex so several goroutines can mutate
// it. Retain and Release go straight to the array's atomic share count.
type SafeArray[T any] struct {
	mu sync.Mutex
	a  *Array[T]
}

// NewSafeArray creates a guarded array with default options.
func NewSafeArray[T any](capacity int) *SafeArray[T] {
	return &SafeArray[T]{a: New[T](capacity)}
}

// NewSafeArrayWithOptions creates a guarded array configured by opts.
func NewSafeArrayWithOptions[T any](capacity int, opts Options[T]) *SafeArray[T] {
	return &SafeArray[T]{a: NewWithOptions(capacity, opts)}
}

// Guard wraps a. The share the caller holds on a now belongs to the
// SafeArray; a must not be used directly afterwards.
func Guard[T any](a *Array[T]) *SafeArray[T] {
	a.check("Guard")
	return &SafeArray[T]{a: a}
}

// Retain adds a share and returns s.
func (s *SafeArray[T]) Retain() *SafeArray[T] {
	s.a.Retain()
	return s
}

// Release drops one share and reports whether the array was destroyed.
func (s *SafeArray[T]) Release() bool {
	return s.a.Release()
}

// Do runs fn with exclusive access to the array. fn must not retain the
// *Array beyond the call.
func (s *SafeArray[T]) Do(fn func(a *Array[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.a)
}

// Snapshot thread-safely returns an exact-capacity copy of the array.
func (s *SafeArray[T]) Snapshot() *Array[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Copy()
}

// Len thread-safely returns the number of elements.
func (s *SafeArray[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// Cap thread-safely returns the capacity.
func (s *SafeArray[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Cap()
}

// Get thread-safely returns the element at index i.
func (s *SafeArray[T]) Get(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Get(i)
}

// Set thread-safely overwrites the element at index i.
func (s *SafeArray[T]) Set(i int, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Set(i, v)
}

// Push thread-safely appends v.
func (s *SafeArray[T]) Push(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Push(v)
}

// TryPop thread-safely removes the last element. It reports false instead
// of panicking when the array is empty, since another goroutine may have
// drained it between a Len check and the pop.
func (s *SafeArray[T]) TryPop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.a.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.a.Pop(), true
}

// Insert thread-safely places v at index i.
func (s *SafeArray[T]) Insert(i int, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Insert(i, v)
}

// Remove thread-safely deletes and returns the element at index i.
func (s *SafeArray[T]) Remove(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remove(i)
}

// Clear thread-safely destroys every element.
func (s *SafeArray[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Sort thread-safely sorts the array by cmp.
func (s *SafeArray[T]) Sort(cmp func(x, y T) int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Sort(cmp)
}
