package scoreheap

import "github.com/obsius/score-heap/internal/partition"

// Stats is a point-in-time snapshot of the heap's internal shape.
type Stats struct {
	// Entries is the number of currently-present identifiers.
	Entries int
	// Capacity is the fixed key-space bound.
	Capacity int
	// SegmentCapacity is the fixed sorted-segment member bound.
	SegmentCapacity int
	// Segments is the current segment count.
	Segments int
	// SortedSegments and UniformSegments break Segments down by variant.
	SortedSegments  int
	UniformSegments int
	// Tombstones counts removed-but-uncompacted slots across all uniform
	// segments.
	Tombstones int
}

// Stats returns statistics about the heap.
func (h *Heap) Stats() Stats {
	st := Stats{
		Entries:         h.count,
		Capacity:        h.capacity,
		SegmentCapacity: h.segCap,
		Segments:        len(h.segs),
	}
	for _, s := range h.segs {
		if s.Kind() == partition.Uniform {
			st.UniformSegments++
		} else {
			st.SortedSegments++
		}
		st.Tombstones += s.Tombstones()
	}
	return st
}
