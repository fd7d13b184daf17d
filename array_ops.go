package dynarray

import "slices"

// NotFound is returned by FindIndex when no element matches.
const NotFound = -1

// Insert places v at index i, shifting later elements right.
// i may equal Len, which appends.
func (a *Array[T]) Insert(i int, v T) {
	a.check("Insert")
	if i < 0 || i > a.length {
		a.fail("Insert", ErrIndexOutOfRange, "index %d, length %d", i, a.length)
	}
	a.ensure("Insert", a.length+1)
	copy(a.buf[i+1:a.length+1], a.buf[i:a.length])
	a.buf[i] = v
	a.length++
}

// Remove deletes the element at index i and returns it, shifting later
// elements left. The caller takes ownership of the returned value.
func (a *Array[T]) Remove(i int) T {
	a.check("Remove")
	a.checkIndex("Remove", i)
	v := a.buf[i]
	copy(a.buf[i:], a.buf[i+1:a.length])
	a.length--
	var zero T
	a.buf[a.length] = zero
	return v
}

// Discard deletes the element at index i and destroys it.
func (a *Array[T]) Discard(i int) {
	a.check("Discard")
	a.checkIndex("Discard", i)
	a.opts.Hooks.destroy(a.Remove(i))
}

// RemoveRange deletes count elements starting at start and destroys them.
func (a *Array[T]) RemoveRange(start, count int) {
	a.check("RemoveRange")
	if count < 0 {
		a.fail("RemoveRange", ErrNegativeCount, "count %d", count)
	}
	if start < 0 || start > a.length || count > a.length-start {
		a.fail("RemoveRange", ErrInvalidRange, "start %d, count %d, length %d", start, count, a.length)
	}
	if count == 0 {
		return
	}
	a.opts.Hooks.destroyAll(a.buf[start : start+count])
	copy(a.buf[start:], a.buf[start+count:a.length])
	clear(a.buf[a.length-count : a.length])
	a.length -= count
}

// AppendSlice appends vs in order, growing once under the growth policy.
// The array takes ownership of the values. vs may be a view of the array
// itself, such as a.Data().
func (a *Array[T]) AppendSlice(vs ...T) {
	a.check("AppendSlice")
	if len(vs) == 0 {
		return
	}
	var old []T
	if needed := a.length + len(vs); needed > len(a.buf) {
		old = a.regrowTo("AppendSlice", needed)
	}
	copy(a.buf[a.length:], vs)
	a.length += len(vs)
	if old != nil {
		a.opts.Allocator.Free(old)
	}
}

// Fill appends count copies of v. With a Retain hook each slot holds its
// own retained copy and the caller keeps ownership of v.
func (a *Array[T]) Fill(v T, count int) {
	a.check("Fill")
	if count < 0 {
		a.fail("Fill", ErrNegativeCount, "count %d", count)
	}
	if count == 0 {
		return
	}
	a.ensure("Fill", a.length+count)
	for i := a.length; i < a.length+count; i++ {
		a.buf[i] = a.opts.Hooks.retain(v)
	}
	a.length += count
}

// AppendArray appends every element of src, retaining each through src's
// Retain hook. src is unchanged; appending an array to itself is allowed.
func (a *Array[T]) AppendArray(src *Array[T]) {
	a.check("AppendArray")
	if src == nil {
		a.fail("AppendArray", ErrNilArray, "source")
	}
	src.check("AppendArray")
	n := src.length
	if n == 0 {
		return
	}
	a.ensure("AppendArray", a.length+n)
	// src.buf is read after ensure: when src == a it now names the new buffer.
	for i, v := range src.buf[:n] {
		a.buf[a.length+i] = src.opts.Hooks.retain(v)
	}
	a.length += n
}

// Copy returns a new array with the same elements, options and hooks,
// capacity exactly Len and one share. Elements are retained.
func (a *Array[T]) Copy() *Array[T] {
	a.check("Copy")
	return a.copyRange(0, a.length)
}

// Slice returns a new array holding elements [start, end) with capacity
// exactly end-start. Elements are retained.
func (a *Array[T]) Slice(start, end int) *Array[T] {
	a.check("Slice")
	if start < 0 || end < start || end > a.length {
		a.fail("Slice", ErrInvalidRange, "[%d, %d) of length %d", start, end, a.length)
	}
	return a.copyRange(start, end)
}

func (a *Array[T]) copyRange(start, end int) *Array[T] {
	out := newExact(end-start, a.opts)
	for i, v := range a.buf[start:end] {
		out.buf[i] = a.opts.Hooks.retain(v)
	}
	out.length = end - start
	return out
}

// Concat returns a new array holding the elements of a followed by those of
// b, with capacity exactly a.Len()+b.Len() and a's options. Both inputs are
// unchanged; each element is retained through its source's hook.
func Concat[T any](a, b *Array[T]) *Array[T] {
	if a == nil || b == nil {
		panic(usageErr("Concat", ErrNilArray, ""))
	}
	a.check("Concat")
	b.check("Concat")
	out := newExact(a.length+b.length, a.opts)
	for i, v := range a.buf[:a.length] {
		out.buf[i] = a.opts.Hooks.retain(v)
	}
	for i, v := range b.buf[:b.length] {
		out.buf[a.length+i] = b.opts.Hooks.retain(v)
	}
	out.length = a.length + b.length
	return out
}

// Reverse reverses the elements in place.
func (a *Array[T]) Reverse() {
	a.check("Reverse")
	slices.Reverse(a.buf[:a.length])
}

// Swap exchanges the elements at i and j.
func (a *Array[T]) Swap(i, j int) {
	a.check("Swap")
	a.checkIndex("Swap", i)
	a.checkIndex("Swap", j)
	a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
}

// Peek returns the last element without removing it.
func (a *Array[T]) Peek() T {
	a.check("Peek")
	if a.length == 0 {
		a.fail("Peek", ErrEmpty, "")
	}
	return a.buf[a.length-1]
}

// PeekFirst returns the first element without removing it.
func (a *Array[T]) PeekFirst() T {
	a.check("PeekFirst")
	if a.length == 0 {
		a.fail("PeekFirst", ErrEmpty, "")
	}
	return a.buf[0]
}

// FindIndex returns the index of the first element satisfying pred, or NotFound.
func (a *Array[T]) FindIndex(pred func(T) bool) int {
	a.check("FindIndex")
	if pred == nil {
		a.fail("FindIndex", ErrNilFunc, "predicate")
	}
	for i, v := range a.buf[:a.length] {
		if pred(v) {
			return i
		}
	}
	return NotFound
}

// Contains reports whether any element satisfies pred.
func (a *Array[T]) Contains(pred func(T) bool) bool {
	return a.FindIndex(pred) != NotFound
}

// Sort orders the elements in place by cmp, which returns a negative
// number, zero or a positive number like cmp.Compare. The sort is not stable.
func (a *Array[T]) Sort(cmp func(x, y T) int) {
	a.check("Sort")
	if cmp == nil {
		a.fail("Sort", ErrNilFunc, "comparator")
	}
	slices.SortFunc(a.buf[:a.length], cmp)
}
