package dynarray

// Filter returns a new array holding, in order, the elements of a that
// satisfy pred. Matches are collected through a Builder so the result has
// capacity exactly equal to the number of matches. The result inherits a's
// options; kept elements are retained.
func Filter[T any](a *Array[T], pred func(T) bool) *Array[T] {
	if a == nil {
		panic(usageErr("Filter", ErrNilArray, ""))
	}
	a.check("Filter")
	if pred == nil {
		a.fail("Filter", ErrNilFunc, "predicate")
	}
	b := NewBuilderWithOptions(a.opts)
	for _, v := range a.buf[:a.length] {
		if pred(v) {
			b.Append(a.opts.Hooks.retain(v))
		}
	}
	return b.ToArray()
}

// Map returns a new array of the same length with fn applied to every
// element, allocated at exactly Len up front. The result inherits a's
// options, hooks included, and owns the values fn returns. Unlike Filter,
// Map does not retain: fn receives the source's values and must return
// values the result can destroy independently, e.g. a.Hooks().Retain(v)
// rather than v itself when the hooks manage a payload.
func Map[T any](a *Array[T], fn func(T) T) *Array[T] {
	if a == nil {
		panic(usageErr("Map", ErrNilArray, ""))
	}
	a.check("Map")
	if fn == nil {
		a.fail("Map", ErrNilFunc, "mapper")
	}
	out := newExact(a.length, a.opts)
	for i, v := range a.buf[:a.length] {
		out.buf[i] = fn(v)
	}
	out.length = a.length
	return out
}

// MapTo is Map for a mapper that changes the element type. The result is
// configured by opts and has capacity exactly a.Len().
func MapTo[T, U any](a *Array[T], fn func(T) U, opts Options[U]) *Array[U] {
	if a == nil {
		panic(usageErr("MapTo", ErrNilArray, ""))
	}
	a.check("MapTo")
	if fn == nil {
		a.fail("MapTo", ErrNilFunc, "mapper")
	}
	out := newExact(a.length, opts.sanitized())
	for i, v := range a.buf[:a.length] {
		out.buf[i] = fn(v)
	}
	out.length = a.length
	return out
}

// Reduce folds the elements of a from left to right into initial and
// returns the result. An empty array yields initial unchanged.
func Reduce[T, A any](a *Array[T], initial A, fn func(acc A, v T) A) A {
	if a == nil {
		panic(usageErr("Reduce", ErrNilArray, ""))
	}
	a.check("Reduce")
	if fn == nil {
		a.fail("Reduce", ErrNilFunc, "reducer")
	}
	acc := initial
	for _, v := range a.buf[:a.length] {
		acc = fn(acc, v)
	}
	return acc
}

// ReduceInto is Reduce for accumulators updated in place. *out is set to
// initial, then fn mutates it once per element in order. out may point at
// the variable initial was read from.
func ReduceInto[T, A any](a *Array[T], initial A, out *A, fn func(acc *A, v T)) {
	if a == nil {
		panic(usageErr("ReduceInto", ErrNilArray, ""))
	}
	a.check("ReduceInto")
	if out == nil || fn == nil {
		a.fail("ReduceInto", ErrNilFunc, "accumulator or reducer")
	}
	*out = initial
	for _, v := range a.buf[:a.length] {
		fn(out, v)
	}
}

// Filter is the method form of the package-level Filter.
func (a *Array[T]) Filter(pred func(T) bool) *Array[T] {
	return Filter(a, pred)
}

// Map is the method form of the package-level Map.
func (a *Array[T]) Map(fn func(T) T) *Array[T] {
	return Map(a, fn)
}
