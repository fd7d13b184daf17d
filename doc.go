// Package dynarray implements reference-counted growable arrays for Go,
// with a doubling Builder for write-heavy construction and functional
// transforms that allocate their results at exact capacity.
//
// # Overview
//
// An Array is a shared, mutable sequence with an explicit share count.
// It is useful when:
//
//   - One buffer is built once and then handed to many goroutines
//   - Elements own resources that must be released exactly once
//   - Allocation slack matters and results should carry no spare capacity
//   - Buffers should come from a caller-controlled Arena
//
// # Basic Usage
//
//	arr := dynarray.New[int](0) // one share, doubling growth
//	defer arr.Release()
//
//	arr.Push(42)
//	arr.AppendSlice(1, 2, 3)
//	v := arr.Get(0)
//
//	evens := arr.Filter(func(x int) bool { return x%2 == 0 })
//	defer evens.Release()
//	// evens.Cap() == evens.Len()
//
// # Builder
//
//	b := dynarray.NewBuilder[int]()
//	for i := range 100 {
//		b.Append(i)
//	}
//	arr := b.ToArray() // Len 100, Cap 100; b is consumed
//
// # Sharing
//
// Retain and Release use atomic fetch-add/fetch-sub, so a retained array
// can be handed to other goroutines and released from any of them. The
// release that drops the last share destroys the elements and frees the
// buffer. All other operations need external synchronization when the same
// array is mutated concurrently; SafeArray provides it.
//
// Build with -tags dynarray_unsynced to use a plain counter instead.
//
// # Ownership Hooks
//
// Hooks attach Retain (clone) and Destroy callbacks to an array. Destroy
// runs on every element the array discards; Retain runs on every element
// duplicated into another container by Copy, Slice, Concat, AppendArray,
// Filter and Fill. Element types implementing Owned get both from
// OwnedHooks.
//
// # Misuse
//
// Out-of-range indexes, negative counts, use after Release and use of a
// consumed Builder are programmer errors. They are detected before any
// state changes and panic with a *UsageError wrapping a sentinel such as
// ErrIndexOutOfRange. Options.OnFailure observes them first.
//
// # Performance Characteristics
//
//   - Push, Pop, Builder.Append: O(1) amortized
//   - Insert, Remove, RemoveRange: O(n)
//   - Copy, Slice, Concat, Filter, Map: O(n), one exact allocation
//   - Retain, Release: O(1); the final Release is O(n) with a Destroy hook
package dynarray
