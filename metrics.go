package dynarray

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len         int     // Live elements
	Cap         int     // Buffer capacity in elements
	ShareCount  int     // Live shares
	ElemSize    int     // Bytes per element
	Bytes       int     // Buffer size in bytes
	Utilization float64 // Len / Cap (0.0-1.0), 0 without a buffer
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	a.check("Metrics")
	m := ArrayMetrics{
		Len:        a.length,
		Cap:        len(a.buf),
		ShareCount: int(a.refs.load()),
		ElemSize:   ElemSize[T](),
	}
	m.Bytes = m.Cap * m.ElemSize
	if m.Cap > 0 {
		m.Utilization = float64(m.Len) / float64(m.Cap)
	}
	return m
}

// Metrics thread-safely returns a snapshot of array statistics.
func (s *SafeArray[T]) Metrics() ArrayMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// LenInUse returns the number of elements handed out from the arena's chunks.
func (a *Arena[T]) LenInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity, in elements, of all chunks.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of elements in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.LenInUse()) / float64(capacity)
}

// ChunkLen returns the default number of elements per chunk.
func (a *Arena[T]) ChunkLen() int {
	return a.chunkLen
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	size := ElemSize[T]()
	inUse, capacity := a.LenInUse(), a.Capacity()
	return ArenaMetrics{
		LenInUse:    inUse,
		Capacity:    capacity,
		SizeInUse:   inUse * size,
		Bytes:       capacity * size,
		NumChunks:   a.NumChunks(),
		ChunkLen:    a.ChunkLen(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	LenInUse    int     // Elements handed out
	Capacity    int     // Total capacity in elements
	SizeInUse   int     // Bytes handed out
	Bytes       int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkLen    int     // Default elements per chunk
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// LenInUse thread-safely returns the number of elements handed out.
func (s *SafeArena[T]) LenInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.LenInUse()
}

// NumChunks thread-safely returns the number of chunks currently allocated.
func (s *SafeArena[T]) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// Capacity thread-safely returns the total capacity of all chunks.
func (s *SafeArena[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
