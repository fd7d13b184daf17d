package dynarray

import (
	"cmp"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeArenaOperations(t *testing.T) {
	s := NewSafeArena[int](1024)

	buf := s.Alloc(100)
	if len(buf) != 100 {
		t.Errorf("Alloc(100) length = %d, want 100", len(buf))
	}
	buf[0] = 1
	s.Free(buf)
	if buf[0] != 0 {
		t.Error("Free should clear the buffer")
	}

	s.EnsureCapacity(2000)
	if s.NumChunks() != 2 {
		t.Errorf("NumChunks after EnsureCapacity(2000) = %d, want 2", s.NumChunks())
	}

	s.Reset()
	if s.LenInUse() != 0 {
		t.Errorf("LenInUse after Reset() = %d, want 0", s.LenInUse())
	}

	s.Release()
	requireMisuse(t, ErrReleased, func() { s.Alloc(1) })
}

func TestSafeArenaConcurrency(t *testing.T) {
	s := NewSafeArena[int](1024)
	const numGoroutines = 10
	const numArraysPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	// Each goroutine owns its arrays; only the arena is shared.
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numArraysPerGoroutine; j++ {
				a := NewWithOptions(0, Options[int]{Allocator: s})
				for k := 0; k < 20; k++ {
					a.Push(id*1000 + k)
				}
				if a.Get(19) != id*1000+19 {
					t.Errorf("goroutine %d: corrupted array", id)
				}
				a.Release()
			}
		}(i)
	}

	wg.Wait()

	if s.LenInUse() == 0 {
		t.Error("Expected elements in use after concurrent operations")
	}
}

func TestSafeArenaConcurrentResetMetrics(t *testing.T) {
	s := NewSafeArena[byte](1024)
	const numWorkers = 5

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers-2; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Alloc(32)
				runtime.Gosched()
			}
		}()
	}

	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			runtime.Gosched()
			s.Reset()
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_ = s.LenInUse()
			_ = s.Capacity()
			_ = s.Metrics()
			runtime.Gosched()
		}
	}()

	wg.Wait()
}

func TestSafeArray(t *testing.T) {
	s := NewSafeArray[int](0)
	s.Push(3)
	s.Push(1)
	s.Insert(1, 2)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 4, s.Cap())

	s.Sort(cmp.Compare[int])
	assert.Equal(t, 1, s.Get(0))
	s.Set(0, 10)
	assert.Equal(t, 10, s.Remove(0))

	snap := s.Snapshot()
	assert.Equal(t, []int{2, 3}, snap.Data())
	assert.Equal(t, 2, snap.Cap())

	v, ok := s.TryPop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	s.Clear()
	_, ok = s.TryPop()
	assert.False(t, ok)

	s.Do(func(a *Array[int]) { a.AppendSlice(7, 8, 9) })
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Metrics().Len)

	assert.Same(t, s, s.Retain())
	assert.False(t, s.Release())
	assert.True(t, s.Release())
}

func TestGuard(t *testing.T) {
	var c countingHooks
	a := NewWithHooks(0, c.hooks())
	a.AppendSlice(1, 2)

	s := Guard(a)
	s.Push(3)
	require.True(t, s.Release())
	assert.Equal(t, []int{1, 2, 3}, c.destroyed)

	requireMisuse(t, ErrReleased, func() { Guard(a) })
}

func TestSafeArrayConcurrentPush(t *testing.T) {
	s := NewSafeArrayWithOptions(0, Options[int]{Growth: FixedStep(64)})
	const numGoroutines = 8
	const numPushes = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numPushes; j++ {
				s.Push(id)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, numGoroutines*numPushes, s.Len())
	counts := make(map[int]int)
	s.Do(func(a *Array[int]) {
		for _, v := range a.Data() {
			counts[v]++
		}
	})
	for i := 0; i < numGoroutines; i++ {
		assert.Equal(t, numPushes, counts[i])
	}

	var popped atomic.Int64
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for {
				if _, ok := s.TryPop(); !ok {
					return
				}
				popped.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(numGoroutines*numPushes), popped.Load())
}

func TestConcurrentRetainRelease(t *testing.T) {
	if !AtomicRefCount {
		t.Skip("share count is not atomic in this build")
	}

	var destroyed atomic.Int32
	a := NewWithHooks(0, Hooks[int]{Destroy: func(int) { destroyed.Add(1) }})
	a.AppendSlice(1, 2, 3)

	const numGoroutines = 16
	const rounds = 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				a.Retain()
				if a.Release() {
					t.Error("released the last share while the owner still holds one")
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, a.ShareCount())
	assert.Zero(t, destroyed.Load())

	// Hand a share to each goroutine; exactly one release destroys.
	for i := 0; i < numGoroutines-1; i++ {
		a.Retain()
	}
	var freed atomic.Int32
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			if a.Release() {
				freed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), freed.Load())
	assert.Equal(t, int32(3), destroyed.Load())
}
