package dynarray

import "github.com/pavanmanishd/dynarray/internal/logging"

// Builder accumulates elements for an Array that is built once.
// It always grows by doubling (0, 1, 2, 4, 8, ...) regardless of the growth
// policy in its options and carries no share count.
// ToArray moves the buffer into a new Array trimmed to exactly Len
// elements and consumes the builder; Destroy discards it. Any use of a
// consumed builder panics with ErrConsumed.
//
// The builder owns its elements under the Destroy hook in its options, the
// same hook the produced array gets: Set, Clear and Destroy run it on the
// values they drop. The zero Builder is not usable; create one with
// NewBuilder or NewBuilderWithOptions.
//
// A Builder must not be shared across goroutines.
type Builder[T any] struct {
	buf      []T
	length   int
	opts     Options[T]
	consumed bool
}

// NewBuilder creates an empty builder producing default arrays.
func NewBuilder[T any]() *Builder[T] {
	return NewBuilderWithOptions(Options[T]{})
}

// NewBuilderWithOptions creates an empty builder. The allocator and logger
// are used while building; all options are handed to the array ToArray
// produces.
func NewBuilderWithOptions[T any](opts Options[T]) *Builder[T] {
	return &Builder[T]{opts: opts.sanitized()}
}

// Len returns the number of appended elements.
func (b *Builder[T]) Len() int {
	b.check("Len")
	return b.length
}

// Cap returns the builder's current buffer capacity.
func (b *Builder[T]) Cap() int {
	b.check("Cap")
	return len(b.buf)
}

// Append adds v at the end.
func (b *Builder[T]) Append(v T) {
	b.check("Append")
	if b.length == len(b.buf) {
		b.grow("Append", b.length+1)
	}
	b.buf[b.length] = v
	b.length++
}

// AppendSlice adds vs at the end, growing at most once. vs may alias the
// builder's own elements.
func (b *Builder[T]) AppendSlice(vs ...T) {
	b.check("AppendSlice")
	if len(vs) == 0 {
		return
	}
	var old []T
	if needed := b.length + len(vs); needed > len(b.buf) {
		newCap := Doubling().Next(len(b.buf), needed)
		b.opts.Logger.Debugf(logging.NSBuilder+"AppendSlice: grow cap %d -> %d", len(b.buf), newCap)
		old = b.buf
		b.buf = regrow(b.opts.Allocator, old, b.length, newCap)
	}
	copy(b.buf[b.length:], vs)
	b.length += len(vs)
	if old != nil {
		b.opts.Allocator.Free(old)
	}
}

// AppendArray adds every element of src, retaining each through src's
// Retain hook. The builder owns the retained values from then on.
// Capacity set by an earlier Reserve is used before growing.
func (b *Builder[T]) AppendArray(src *Array[T]) {
	b.check("AppendArray")
	if src == nil {
		b.fail("AppendArray", ErrNilArray, "source")
	}
	src.check("Builder.AppendArray")
	n := src.length
	if n == 0 {
		return
	}
	b.ensure("AppendArray", b.length+n)
	for i, v := range src.buf[:n] {
		b.buf[b.length+i] = src.opts.Hooks.retain(v)
	}
	b.length += n
}

// Reserve grows the buffer to exactly n elements if n exceeds the current
// capacity. It never shrinks.
func (b *Builder[T]) Reserve(n int) {
	b.check("Reserve")
	if n < 0 {
		b.fail("Reserve", ErrNegativeCount, "capacity %d", n)
	}
	if n > len(b.buf) {
		b.buf = reallocate(b.opts.Allocator, b.buf, b.length, n)
	}
}

// Get returns the element at index i.
func (b *Builder[T]) Get(i int) T {
	b.check("Get")
	b.checkIndex("Get", i)
	return b.buf[i]
}

// Set overwrites the element at index i, destroying the previous value.
func (b *Builder[T]) Set(i int, v T) {
	b.check("Set")
	b.checkIndex("Set", i)
	b.opts.Hooks.destroy(b.buf[i])
	b.buf[i] = v
}

// Clear destroys every element, keeping the capacity.
func (b *Builder[T]) Clear() {
	b.check("Clear")
	live := b.buf[:b.length]
	b.opts.Hooks.destroyAll(live)
	clear(live)
	b.length = 0
}

// ToArray consumes the builder and returns an Array with its elements,
// its options and one share. The buffer is moved, then reallocated down to
// exactly Len elements; an empty builder yields an array with no buffer.
func (b *Builder[T]) ToArray() *Array[T] {
	b.check("ToArray")
	return b.finish(b.opts)
}

// ToArrayWithHooks is ToArray with hooks replacing those in the builder's options.
func (b *Builder[T]) ToArrayWithHooks(hooks Hooks[T]) *Array[T] {
	b.check("ToArrayWithHooks")
	opts := b.opts
	opts.Hooks = hooks
	return b.finish(opts)
}

func (b *Builder[T]) finish(opts Options[T]) *Array[T] {
	a := &Array[T]{opts: opts}
	a.refs.init()
	switch {
	case b.length == 0:
		if b.buf != nil {
			b.opts.Allocator.Free(b.buf)
		}
	case b.length == len(b.buf):
		a.buf = b.buf
	default:
		b.opts.Logger.Debugf(logging.NSBuilder+"ToArray: trim cap %d -> %d", len(b.buf), b.length)
		a.buf = reallocate(b.opts.Allocator, b.buf, b.length, b.length)
	}
	a.length = b.length
	b.buf = nil
	b.length = 0
	b.consumed = true
	return a
}

// Destroy consumes the builder without producing an array. Every element,
// including those AppendArray retained, goes through the Destroy hook.
func (b *Builder[T]) Destroy() {
	b.check("Destroy")
	b.opts.Hooks.destroyAll(b.buf[:b.length])
	if b.buf != nil {
		b.opts.Allocator.Free(b.buf)
	}
	b.buf = nil
	b.length = 0
	b.consumed = true
}

func (b *Builder[T]) ensure(op string, needed int) {
	if needed > len(b.buf) {
		b.grow(op, needed)
	}
}

func (b *Builder[T]) grow(op string, needed int) {
	newCap := Doubling().Next(len(b.buf), needed)
	b.opts.Logger.Debugf(logging.NSBuilder+"%s: grow cap %d -> %d", op, len(b.buf), newCap)
	b.buf = reallocate(b.opts.Allocator, b.buf, b.length, newCap)
}

func (b *Builder[T]) check(op string) {
	if b == nil {
		panic(usageErr("Builder."+op, ErrConsumed, "nil builder"))
	}
	if b.opts.Allocator == nil {
		panic(usageErr("Builder."+op, ErrConsumed, "zero Builder"))
	}
	if b.consumed {
		b.fail(op, ErrConsumed, "")
	}
}

func (b *Builder[T]) checkIndex(op string, i int) {
	if i < 0 || i >= b.length {
		b.fail(op, ErrIndexOutOfRange, "index %d, length %d", i, b.length)
	}
}

func (b *Builder[T]) fail(op string, err error, format string, args ...any) {
	b.opts.fail(logging.NSBuilder, usageErr("Builder."+op, err, format, args...))
}
