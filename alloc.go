package dynarray

import "unsafe"

// Allocator supplies element buffers to arrays and builders.
//
// Alloc returns a zeroed slice with len == cap == n; n is always positive.
// Free is called with a buffer the container no longer uses. It must drop
// any references the buffer holds; reclaiming the memory is optional.
type Allocator[T any] interface {
	Alloc(n int) []T
	Free(buf []T)
}

// HeapAllocator allocates buffers from the Go heap. It is the default.
type HeapAllocator[T any] struct{}

// Alloc returns make([]T, n).
func (HeapAllocator[T]) Alloc(n int) []T {
	return make([]T, n)
}

// Free clears buf so the garbage collector can reclaim what it referenced.
func (HeapAllocator[T]) Free(buf []T) {
	clear(buf)
}

// ElemSize returns the size in bytes of one T.
func ElemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// reallocate moves the first live elements of old into a fresh buffer of
// newCap elements and frees old. A newCap of 0 yields a nil buffer.
func reallocate[T any](alloc Allocator[T], old []T, live, newCap int) []T {
	buf := regrow(alloc, old, live, newCap)
	if old != nil {
		alloc.Free(old)
	}
	return buf
}

// regrow is reallocate without freeing old. Callers that still read from
// old, e.g. when appending a view of it, free it themselves afterwards.
func regrow[T any](alloc Allocator[T], old []T, live, newCap int) []T {
	if newCap == 0 {
		return nil
	}
	buf := alloc.Alloc(newCap)
	copy(buf, old[:live])
	return buf
}
