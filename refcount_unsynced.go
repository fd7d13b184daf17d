//go:build dynarray_unsynced

package dynarray

// refCount is a plain share count. Only safe when every Retain and Release
// of an array happens on one goroutine.
type refCount struct {
	n int32
}

// AtomicRefCount reports whether share counts are atomic in this build.
const AtomicRefCount = false

func (r *refCount) init() { r.n = 1 }

func (r *refCount) inc() int32 {
	r.n++
	return r.n - 1
}

func (r *refCount) dec() int32 {
	r.n--
	return r.n + 1
}

func (r *refCount) load() int32 { return r.n }
