package dynarray

import (
	"fmt"

	"github.com/pavanmanishd/dynarray/internal/logging"
)

// Array is a shared, growable sequence of T with an explicit share count.
//
// An Array starts with one share. Retain adds a share and returns the same
// handle; Release drops one. The release that drops the last share destroys
// every live element through the Destroy hook, hands the buffer back to the
// allocator and marks the array dead: any later use panics with ErrReleased.
//
// Retain and Release are safe to call from several goroutines at once.
// Every other method requires external synchronization when the same array
// is mutated concurrently; see SafeArray.
//
// Arrays are created by New, NewWithOptions, Of, Copy or Builder.ToArray.
// The zero Array is not usable: every method panics with ErrNilArray.
type Array[T any] struct {
	refs   refCount
	buf    []T // len(buf) is the capacity; nil iff capacity is 0
	length int
	opts   Options[T]
	dead   bool
}

// New creates an empty Array with room for capacity elements, doubling
// growth, heap allocation and no hooks. It panics if capacity < 0.
func New[T any](capacity int) *Array[T] {
	return NewWithOptions(capacity, Options[T]{})
}

// NewWithHooks creates an empty Array whose elements are managed by hooks.
func NewWithHooks[T any](capacity int, hooks Hooks[T]) *Array[T] {
	return NewWithOptions(capacity, Options[T]{Hooks: hooks})
}

// NewWithOptions creates an empty Array configured by opts.
func NewWithOptions[T any](capacity int, opts Options[T]) *Array[T] {
	opts = opts.sanitized()
	if capacity < 0 {
		opts.fail(logging.NSArray, usageErr("New", ErrNegativeCount, "capacity %d", capacity))
	}
	return newExact(capacity, opts)
}

// Of creates an Array holding vs with capacity exactly len(vs).
func Of[T any](vs ...T) *Array[T] {
	a := newExact(len(vs), DefaultOptions[T]())
	copy(a.buf, vs)
	a.length = len(vs)
	return a
}

// newExact allocates an empty array with capacity n. opts must be sanitized.
func newExact[T any](n int, opts Options[T]) *Array[T] {
	a := &Array[T]{opts: opts}
	a.refs.init()
	if n > 0 {
		a.buf = opts.Allocator.Alloc(n)
	}
	return a
}

// Retain adds a share and returns the same array.
func (a *Array[T]) Retain() *Array[T] {
	a.check("Retain")
	a.refs.inc()
	return a
}

// Release drops one share. It reports whether this call dropped the last
// share and therefore destroyed the elements and freed the buffer.
func (a *Array[T]) Release() bool {
	a.check("Release")
	old := a.refs.dec()
	if old > 1 {
		return false
	}
	if old < 1 {
		a.fail("Release", ErrReleased, "share count %d", old)
	}
	a.opts.Hooks.destroyAll(a.buf[:a.length])
	if a.buf != nil {
		a.opts.Allocator.Free(a.buf)
	}
	a.buf = nil
	a.length = 0
	a.dead = true
	return true
}

// Release drops the share held through *p and sets *p to nil, so the
// caller's handle cannot be used again. It reports whether the array was
// destroyed.
func Release[T any](p **Array[T]) bool {
	if p == nil || *p == nil {
		panic(usageErr("Release", ErrNilArray, ""))
	}
	a := *p
	*p = nil
	return a.Release()
}

// ShareCount returns the current number of shares.
func (a *Array[T]) ShareCount() int {
	a.check("ShareCount")
	return int(a.refs.load())
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	a.check("Len")
	return a.length
}

// Cap returns the number of elements the buffer holds without growing.
func (a *Array[T]) Cap() int {
	a.check("Cap")
	return len(a.buf)
}

// IsEmpty reports whether the array has no live elements.
func (a *Array[T]) IsEmpty() bool {
	a.check("IsEmpty")
	return a.length == 0
}

// ElemSize returns the size in bytes of one element.
func (a *Array[T]) ElemSize() int {
	return ElemSize[T]()
}

// Data returns the live elements. The slice aliases the array's buffer and
// is invalidated by any operation that grows, trims or releases the array.
func (a *Array[T]) Data() []T {
	a.check("Data")
	return a.buf[:a.length:a.length]
}

// Hooks returns the array's ownership hooks.
func (a *Array[T]) Hooks() Hooks[T] {
	return a.opts.Hooks
}

// Growth returns the array's growth policy.
func (a *Array[T]) Growth() Growth {
	return a.opts.Growth
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) T {
	a.check("Get")
	a.checkIndex("Get", i)
	return a.buf[i]
}

// Ptr returns a pointer to the element at index i for in-place updates.
// The pointer is invalidated when the buffer is reallocated.
func (a *Array[T]) Ptr(i int) *T {
	a.check("Ptr")
	a.checkIndex("Ptr", i)
	return &a.buf[i]
}

// Set overwrites the element at index i, destroying the previous value.
func (a *Array[T]) Set(i int, v T) {
	a.check("Set")
	a.checkIndex("Set", i)
	a.opts.Hooks.destroy(a.buf[i])
	a.buf[i] = v
}

// Push appends v, growing the buffer under the array's growth policy.
func (a *Array[T]) Push(v T) {
	a.check("Push")
	if a.length == len(a.buf) {
		a.growTo("Push", a.length+1)
	}
	a.buf[a.length] = v
	a.length++
}

// Pop removes the last element and returns it. The caller takes ownership,
// so Destroy is not called. Pop panics on an empty array.
func (a *Array[T]) Pop() T {
	a.check("Pop")
	if a.length == 0 {
		a.fail("Pop", ErrEmpty, "")
	}
	a.length--
	v := a.buf[a.length]
	var zero T
	a.buf[a.length] = zero
	return v
}

// DiscardLast removes the last element and destroys it.
func (a *Array[T]) DiscardLast() {
	a.check("DiscardLast")
	if a.length == 0 {
		a.fail("DiscardLast", ErrEmpty, "")
	}
	a.opts.Hooks.destroy(a.Pop())
}

// Clear destroys every element and sets the length to 0. Capacity is kept.
func (a *Array[T]) Clear() {
	a.check("Clear")
	live := a.buf[:a.length]
	a.opts.Hooks.destroyAll(live)
	clear(live)
	a.length = 0
}

// Reserve grows the buffer to exactly n elements if n exceeds the current
// capacity. It never shrinks.
func (a *Array[T]) Reserve(n int) {
	a.check("Reserve")
	if n < 0 {
		a.fail("Reserve", ErrNegativeCount, "capacity %d", n)
	}
	if n > len(a.buf) {
		a.setCap(n)
	}
}

// Resize sets the length to n. Growing reserves exactly n when needed and
// fills new slots with the zero value; shrinking destroys dropped elements.
func (a *Array[T]) Resize(n int) {
	a.check("Resize")
	if n < 0 {
		a.fail("Resize", ErrNegativeCount, "length %d", n)
	}
	if n > len(a.buf) {
		a.setCap(n)
	}
	if n > a.length {
		clear(a.buf[a.length:n])
	} else {
		dropped := a.buf[n:a.length]
		a.opts.Hooks.destroyAll(dropped)
		clear(dropped)
	}
	a.length = n
}

// Trim shrinks the buffer to exactly n elements, releasing it entirely
// when n is 0. n must not be below the length; n at or above the current
// capacity leaves the buffer alone.
func (a *Array[T]) Trim(n int) {
	a.check("Trim")
	if n < a.length {
		a.fail("Trim", ErrCapacityBelowLength, "capacity %d, length %d", n, a.length)
	}
	if n < len(a.buf) {
		a.setCap(n)
	}
}

// ShrinkToFit trims the capacity down to the length.
func (a *Array[T]) ShrinkToFit() {
	a.Trim(a.Len())
}

func (a *Array[T]) String() string {
	if a == nil {
		return "Array(nil)"
	}
	if a.dead {
		return "Array(released)"
	}
	return fmt.Sprintf("Array[len=%d cap=%d shares=%d]", a.length, len(a.buf), a.refs.load())
}

// ensure makes room for needed elements under the growth policy.
func (a *Array[T]) ensure(op string, needed int) {
	if needed > len(a.buf) {
		a.growTo(op, needed)
	}
}

func (a *Array[T]) growTo(op string, needed int) {
	if old := a.regrowTo(op, needed); old != nil {
		a.opts.Allocator.Free(old)
	}
}

// regrowTo is growTo that leaves the old buffer alive and returns it for
// the caller to free.
func (a *Array[T]) regrowTo(op string, needed int) []T {
	newCap := a.opts.Growth.Next(len(a.buf), needed)
	a.opts.Logger.Debugf(logging.NSArray+"%s: grow cap %d -> %d (%v)", op, len(a.buf), newCap, a.opts.Growth)
	old := a.buf
	a.buf = regrow(a.opts.Allocator, old, a.length, newCap)
	return old
}

func (a *Array[T]) setCap(n int) {
	a.buf = reallocate(a.opts.Allocator, a.buf, a.length, n)
}

// check panics if a is nil, uninitialized or has been released.
func (a *Array[T]) check(op string) {
	if a == nil {
		panic(usageErr(op, ErrNilArray, ""))
	}
	if a.opts.Allocator == nil {
		panic(usageErr(op, ErrNilArray, "zero Array"))
	}
	if a.dead {
		a.fail(op, ErrReleased, "")
	}
}

func (a *Array[T]) checkIndex(op string, i int) {
	if i < 0 || i >= a.length {
		a.fail(op, ErrIndexOutOfRange, "index %d, length %d", i, a.length)
	}
}

func (a *Array[T]) fail(op string, err error, format string, args ...any) {
	a.opts.fail(logging.NSArray, usageErr(op, err, format, args...))
}
