//go:build !dynarray_unsynced

package dynarray

import "sync/atomic"

// refCount is the share count of an Array. The default build uses atomic
// fetch-add/fetch-sub so Retain and Release may race freely.
// Build with -tags dynarray_unsynced for a plain counter on targets that
// never share arrays across goroutines.
type refCount struct {
	n atomic.Int32
}

// AtomicRefCount reports whether share counts are atomic in this build.
const AtomicRefCount = true

func (r *refCount) init() { r.n.Store(1) }

// inc returns the count before the increment.
func (r *refCount) inc() int32 { return r.n.Add(1) - 1 }

// dec returns the count before the decrement.
func (r *refCount) dec() int32 { return r.n.Add(-1) + 1 }

func (r *refCount) load() int32 { return r.n.Load() }
