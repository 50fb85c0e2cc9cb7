package scoreheap

import (
	"iter"
	"math"
	"slices"

	"github.com/obsius/score-heap/core"
	"github.com/obsius/score-heap/internal/bitmap"
	"github.com/obsius/score-heap/internal/partition"
)

const (
	minSegmentCapacity = 16
	maxSegmentCapacity = 4096
)

// Pair is one (identifier, score) entry passed to New.
type Pair struct {
	ID    core.ID
	Score core.Score
}

// Heap is a partitioned priority index over the dense key space
// [0, capacity). It owns the side table and an ordered sequence of segments;
// see the package documentation for the model.
//
// A Heap is not safe for concurrent use.
type Heap struct {
	opts     Options
	logger   *Logger
	table    *partition.Table
	segs     []*partition.Segment // ascending by Min
	pos      map[int32]int        // segment identity -> position in segs
	nextID   int32
	segCap   int
	count    int
	capacity int
}

// New constructs a heap over the given pairs. Identifiers must be distinct
// and lie in [0, capacity); capacity bounds all future identifiers and is
// never resized.
func New(pairs []Pair, capacity int, optFns ...func(o *Options)) (*Heap, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.SegmentCapacity != 0 && opts.SegmentCapacity < 2 {
		return nil, ErrInvalidSegmentCapacity
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	seen := bitmap.New()
	for _, p := range pairs {
		if p.ID < 0 || int(p.ID) >= capacity {
			return nil, &ErrIdentifierOutOfRange{ID: p.ID, Capacity: capacity}
		}
		if seen.Contains(p.ID) {
			return nil, &ErrDuplicateIdentifier{ID: p.ID}
		}
		seen.Add(p.ID)
	}

	segCap := opts.SegmentCapacity
	if segCap == 0 {
		segCap = deriveSegmentCapacity(len(pairs))
	}

	h := &Heap{
		opts:     opts,
		logger:   opts.Logger,
		table:    partition.NewTable(capacity),
		pos:      make(map[int32]int),
		segCap:   segCap,
		count:    len(pairs),
		capacity: capacity,
	}

	input := slices.Clone(pairs)
	slices.SortFunc(input, func(a, b Pair) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	for _, p := range input {
		h.table.SetScore(p.ID, p.Score)
	}

	// Walk the sorted input in chunks. A full-size chunk sharing one score
	// becomes a uniform segment and absorbs the rest of its run; anything
	// else becomes a sorted segment.
	for i := 0; i < len(input); {
		end := min(i+segCap, len(input))
		var s *partition.Segment
		if end-i == segCap && input[i].Score == input[end-1].Score {
			for end < len(input) && input[end].Score == input[i].Score {
				end++
			}
			s = partition.NewUniform(h.nextSegID(), input[i].Score, memberIDs(input[i:end]), h.table)
		} else {
			s = partition.NewSortedFrom(h.nextSegID(), segCap, memberIDs(input[i:end]), h.table)
		}
		h.pos[s.ID()] = len(h.segs)
		h.segs = append(h.segs, s)
		i = end
	}

	return h, nil
}

func memberIDs(pairs []Pair) []core.ID {
	ids := make([]core.ID, len(pairs))
	for i, p := range pairs {
		ids[i] = p.ID
	}
	return ids
}

// deriveSegmentCapacity sizes sorted segments from the initial entry count:
// roughly sqrt-balanced partitions, clamped into a practical range.
func deriveSegmentCapacity(n int) int {
	derived := int(math.Ceil(math.Sqrt(float64(2 * n))))
	if derived < minSegmentCapacity {
		return minSegmentCapacity
	}
	if derived > maxSegmentCapacity {
		return maxSegmentCapacity
	}
	return derived
}

// Next returns the currently-present identifier with the maximum score
// without removing it; ties resolve to the member at the owning segment's
// tail. Exhausted segments encountered on the way are lazily popped off the
// high end.
func (h *Heap) Next() (core.ID, bool) {
	for len(h.segs) > 0 {
		tail := h.segs[len(h.segs)-1]
		if id, ok := tail.Next(); ok {
			return id, true
		}
		h.removeSegmentAt(len(h.segs) - 1)
	}
	return core.None, false
}

// Update inserts the identifier with the given score, or repositions it if
// already present. Identifiers outside [0, capacity) fail fast.
func (h *Heap) Update(id core.ID, score core.Score) error {
	if id < 0 || int(id) >= h.capacity {
		return &ErrIdentifierOutOfRange{ID: id, Capacity: h.capacity}
	}
	if owner := h.table.Owner(id); owner != partition.NoOwner {
		p := h.pos[owner]
		s := h.segs[p]
		if h.fitsInPlace(s, p, score) {
			s.Update(id, score)
			return nil
		}
		h.detach(id, p, s)
	}
	h.table.SetScore(id, score)
	h.place(id, score)
	h.count++
	return nil
}

// Remove takes the identifier out of the heap, returning it. Returns absent
// with no mutation when the identifier is not present or out of range.
func (h *Heap) Remove(id core.ID) (core.ID, bool) {
	if id < 0 || int(id) >= h.capacity {
		return core.None, false
	}
	owner := h.table.Owner(id)
	if owner == partition.NoOwner {
		return core.None, false
	}
	h.detach(id, h.pos[owner], h.segs[h.pos[owner]])
	return id, true
}

// Pop removes and returns the identifier with the maximum score.
func (h *Heap) Pop() (core.ID, core.Score, bool) {
	id, ok := h.Next()
	if !ok {
		return core.None, 0, false
	}
	score := h.table.Score(id)
	h.Remove(id)
	return id, score, true
}

// Len returns the number of currently-present identifiers.
func (h *Heap) Len() int { return h.count }

// Capacity returns the fixed key-space bound.
func (h *Heap) Capacity() int { return h.capacity }

// SegmentCapacity returns the fixed maximum member count of a sorted
// segment, derived once at construction.
func (h *Heap) SegmentCapacity() int { return h.segCap }

// Contains reports whether the identifier is currently present.
func (h *Heap) Contains(id core.ID) bool {
	return id >= 0 && int(id) < h.capacity && h.table.Present(id)
}

// ScoreOf returns the identifier's current score, or absent if the
// identifier is not present.
func (h *Heap) ScoreOf(id core.ID) (core.Score, bool) {
	if !h.Contains(id) {
		return 0, false
	}
	return h.table.Score(id), true
}

// All returns an iterator over present identifiers and their scores in
// ascending score order. Identifiers sharing one score inside a uniform
// segment are yielded in unspecified relative order. The heap must not be
// mutated during iteration.
func (h *Heap) All() iter.Seq2[core.ID, core.Score] {
	return func(yield func(core.ID, core.Score) bool) {
		for _, s := range h.segs {
			done := s.Ascend(func(id core.ID) bool {
				return yield(id, h.table.Score(id))
			})
			if !done {
				return
			}
		}
	}
}

// detach removes id from the segment at position p, dropping the segment if
// it empties and attempting to join the pair left adjacent by the drop.
func (h *Heap) detach(id core.ID, p int, s *partition.Segment) {
	s.Remove(id)
	h.count--
	if s.Len() == 0 {
		h.removeSegmentAt(p)
		h.logger.LogSegmentDrop(s.ID())
		if p > 0 && p < len(h.segs) {
			h.joinPartitions(p - 1)
		}
	}
}

func (h *Heap) nextSegID() int32 {
	id := h.nextID
	h.nextID++
	return id
}

// insertSegmentAt places s at position q and refreshes the identity mapping
// for every segment whose position shifted.
func (h *Heap) insertSegmentAt(q int, s *partition.Segment) {
	h.segs = append(h.segs, nil)
	copy(h.segs[q+1:], h.segs[q:])
	h.segs[q] = s
	h.reindex(q)
}

// removeSegmentAt drops the segment at position q from the sequence and
// refreshes the identity mapping for every subsequent segment.
func (h *Heap) removeSegmentAt(q int) {
	delete(h.pos, h.segs[q].ID())
	copy(h.segs[q:], h.segs[q+1:])
	h.segs[len(h.segs)-1] = nil
	h.segs = h.segs[:len(h.segs)-1]
	h.reindex(q)
}

// replaceSegmentAt swaps the segment at position q for s, keeping q's slot.
func (h *Heap) replaceSegmentAt(q int, s *partition.Segment) {
	delete(h.pos, h.segs[q].ID())
	h.segs[q] = s
	h.pos[s.ID()] = q
}

func (h *Heap) reindex(from int) {
	for i := from; i < len(h.segs); i++ {
		h.pos[h.segs[i].ID()] = i
	}
}
