package dynarray

import (
	"testing"
)

func TestArrayMetrics(t *testing.T) {
	a := New[int64](0)
	m := a.Metrics()
	if m.Cap != 0 || m.Bytes != 0 || m.Utilization != 0 {
		t.Errorf("empty array metrics = %+v, want zero capacity", m)
	}
	if m.ShareCount != 1 {
		t.Errorf("ShareCount = %d, want 1", m.ShareCount)
	}

	for i := int64(0); i < 5; i++ {
		a.Push(i)
	}
	a.Retain()

	m = a.Metrics()
	want := ArrayMetrics{Len: 5, Cap: 8, ShareCount: 2, ElemSize: 8, Bytes: 64, Utilization: 0.625}
	if m != want {
		t.Errorf("Metrics() = %+v, want %+v", m, want)
	}

	a.ShrinkToFit()
	if u := a.Metrics().Utilization; u != 1 {
		t.Errorf("Utilization after ShrinkToFit = %f, want 1", u)
	}
}

func TestArenaMetrics(t *testing.T) {
	a := NewArena[int32](256)

	if a.LenInUse() != 0 {
		t.Errorf("Initial LenInUse = %d, want 0", a.LenInUse())
	}
	if a.NumChunks() != 1 {
		t.Errorf("Initial NumChunks = %d, want 1", a.NumChunks())
	}
	if a.Capacity() != 256 {
		t.Errorf("Initial Capacity = %d, want 256", a.Capacity())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	a.Alloc(64)
	a.Alloc(64)
	if u := a.Utilization(); u != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", u)
	}

	// Larger than the chunk len.
	a.Alloc(512)
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after growth = %d, want 2", a.NumChunks())
	}

	metrics := a.Metrics()
	want := ArenaMetrics{
		LenInUse:    640,
		Capacity:    768,
		SizeInUse:   640 * 4,
		Bytes:       768 * 4,
		NumChunks:   2,
		ChunkLen:    256,
		Utilization: 640.0 / 768.0,
	}
	if metrics != want {
		t.Errorf("Metrics() = %+v, want %+v", metrics, want)
	}
}

func TestArenaMetricsAfterReset(t *testing.T) {
	a := NewArena[int](1024)
	a.Alloc(500)

	a.Reset()
	if a.LenInUse() != 0 {
		t.Errorf("LenInUse after Reset = %d, want 0", a.LenInUse())
	}
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Reset = %f, want 0", a.Utilization())
	}
	if a.NumChunks() == 0 {
		t.Error("NumChunks should not be 0 after Reset")
	}
	if a.Capacity() == 0 {
		t.Error("Capacity should not be 0 after Reset")
	}
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a := NewArena[int](1024)
	a.Alloc(100)
	a.Release()

	m := a.Metrics()
	if m.LenInUse != 0 || m.NumChunks != 0 || m.Capacity != 0 || m.Utilization != 0 {
		t.Errorf("Metrics after Release = %+v, want empty", m)
	}
}

func TestSafeArenaMetrics(t *testing.T) {
	s := NewSafeArena[int](2048)
	s.Alloc(300)

	if s.LenInUse() != 300 {
		t.Errorf("SafeArena LenInUse = %d, want 300", s.LenInUse())
	}
	metrics := s.Metrics()
	if metrics.ChunkLen != 2048 {
		t.Errorf("SafeArena Metrics.ChunkLen = %d, want 2048", metrics.ChunkLen)
	}
	if metrics.Capacity != s.Capacity() || metrics.NumChunks != s.NumChunks() {
		t.Errorf("SafeArena Metrics = %+v, mismatch with accessors", metrics)
	}
}

func TestUtilizationFullArena(t *testing.T) {
	a := NewArena[byte](100)
	a.Alloc(a.Capacity())
	if u := a.Utilization(); u != 1 {
		t.Errorf("Full arena Utilization = %f, want 1", u)
	}
}

func BenchmarkMetrics(b *testing.B) {
	a := NewArena[int](1 << 16)
	arr := NewWithOptions(0, Options[int]{Allocator: a})
	for i := 0; i < 100; i++ {
		arr.Push(i)
	}

	b.Run("Arena", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = a.Metrics()
		}
	})

	b.Run("Array", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = arr.Metrics()
		}
	})
}
