package alloc

// ArenaMetrics is a snapshot of an arena's storage accounting.
type ArenaMetrics struct {
	BytesInUse  int     // bytes carved out of chunks, including alignment padding
	Capacity    int     // total bytes held across all chunks
	NumChunks   int     // chunks currently held
	ChunkSize   int     // growth unit in bytes
	Utilization float64 // BytesInUse / Capacity, 0.0 to 1.0
}

// BytesInUse returns the bytes carved out of the arena so far, including
// internal fragmentation due to alignment.
func (a *Arena) BytesInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.used
	}
	return sum
}

// Capacity returns the total bytes held across all chunks.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// NumChunks returns the number of chunks currently held.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Utilization returns the ratio of carved bytes to total capacity, or 0
// when the arena holds no chunks.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.BytesInUse()) / float64(capacity)
}

// Metrics returns a snapshot of the arena's storage accounting.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		BytesInUse:  a.BytesInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.chunkSize,
		Utilization: a.Utilization(),
	}
}
