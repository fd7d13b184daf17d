package dynarray

// Hooks are optional per-element ownership callbacks attached to an Array.
//
// Destroy runs on every element the array discards: overwritten by Set,
// dropped by DiscardLast, Discard, RemoveRange, Clear or a shrinking Resize,
// and on every live element when the last share is released.
//
// Retain runs whenever an element is duplicated out of the array into
// another container (Copy, Slice, Concat, AppendArray, Builder.AppendArray,
// Filter) and for every slot written by Fill. It must return a value the
// destination owns independently, e.g. a deep copy.
//
// Values handed to Push, Insert, Set and AppendSlice are moved in: the
// array takes ownership without calling Retain.
type Hooks[T any] struct {
	Retain  func(T) T
	Destroy func(T)
}

// IsZero reports whether no hook is configured.
func (h Hooks[T]) IsZero() bool {
	return h.Retain == nil && h.Destroy == nil
}

func (h Hooks[T]) retain(v T) T {
	if h.Retain == nil {
		return v
	}
	return h.Retain(v)
}

func (h Hooks[T]) destroy(v T) {
	if h.Destroy != nil {
		h.Destroy(v)
	}
}

func (h Hooks[T]) destroyAll(vs []T) {
	if h.Destroy == nil {
		return
	}
	for _, v := range vs {
		h.Destroy(v)
	}
}

// Owned is implemented by element types that manage their own payload.
// Clone returns an independently owned duplicate; Release frees the payload.
type Owned[T any] interface {
	Clone() T
	Release()
}

// OwnedHooks derives Hooks from an element type's own Clone and Release.
func OwnedHooks[T Owned[T]]() Hooks[T] {
	return Hooks[T]{
		Retain:  func(v T) T { return v.Clone() },
		Destroy: func(v T) { v.Release() },
	}
}
