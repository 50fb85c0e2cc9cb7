package scoreheap

import (
	"github.com/obsius/score-heap/core"
	"github.com/obsius/score-heap/internal/order"
	"github.com/obsius/score-heap/internal/partition"
)

// fitsInPlace reports whether the segment at position p can keep holding id
// after it takes the new score: a uniform segment only when the score is its
// shared score, a sorted segment when the score stays inside its own range,
// grows its top without overlapping the neighbor above, or when it is the
// only segment left.
func (h *Heap) fitsInPlace(s *partition.Segment, p int, score core.Score) bool {
	if s.Kind() == partition.Uniform {
		return score == s.Min()
	}
	if len(h.segs) == 1 {
		return true
	}
	if score < s.Min() {
		return false
	}
	if score <= s.Max() {
		return true
	}
	return p == len(h.segs)-1 || score <= h.segs[p+1].Min()
}

// findSegment returns the position of the segment whose range should contain
// the score: the last segment whose min does not exceed it, or position 0
// when the score is below everything.
func (h *Heap) findSegment(score core.Score) int {
	p := order.Search(len(h.segs), func(i int) int {
		if h.segs[i].Min() <= score {
			return -1
		}
		return 1
	})
	if p > 0 && h.segs[p].Min() > score {
		p--
	}
	return p
}

// place re-inserts an identifier whose score is already recorded in the side
// table but which no segment currently owns. The routing cases are evaluated
// in priority order; the first applicable one wins.
func (h *Heap) place(id core.ID, score core.Score) {
	if len(h.segs) == 0 {
		s := partition.NewSorted(h.nextSegID(), h.segCap, h.table)
		s.Insert(id, score)
		h.pos[s.ID()] = 0
		h.segs = append(h.segs, s)
		return
	}

	p := h.findSegment(score)
	t := h.segs[p]
	var below, above *partition.Segment
	if p > 0 {
		below = h.segs[p-1]
	}
	if p+1 < len(h.segs) {
		above = h.segs[p+1]
	}

	// Target is uniform and already holds this exact score.
	if t.Kind() == partition.Uniform && t.Min() == score {
		t.Insert(id, score)
		return
	}

	// The segment below is uniform and holds this exact score.
	if below != nil && below.Kind() == partition.Uniform && below.Min() == score {
		below.Insert(id, score)
		return
	}

	// Target is sorted with room and the score tops its range: append.
	if t.Kind() == partition.Sorted && !t.Full() && score > t.Max() {
		t.InsertAt(id, score, t.Len())
		return
	}

	// Target cannot absorb the score in place from here on.
	blocked := t.Full() || t.Kind() == partition.Uniform

	// The neighbor above is sorted with room and the score clears the
	// target's top: unshift at the neighbor's front. findSegment guarantees
	// the score stays strictly below the neighbor's current min.
	if blocked && above != nil && above.Kind() == partition.Sorted && !above.Full() && score >= t.Max() {
		above.InsertAt(id, score, 0)
		return
	}

	// The score sits exactly on the target's min: try the sorted neighbor
	// below, converting it to uniform first when it is full but monotone on
	// this same score.
	if blocked && score == t.Min() && below != nil && below.Kind() == partition.Sorted {
		if !below.Full() {
			below.Insert(id, score)
			return
		}
		if below.Monotone() && below.Max() == score {
			u := h.convertToUniform(p - 1)
			u.Insert(id, score)
			return
		}
	}

	// Target is uniform but holds a different score: open a fresh
	// single-element sorted segment beside it.
	if t.Kind() == partition.Uniform {
		q := p
		if score > t.Min() {
			q = p + 1
		}
		s := partition.NewSorted(h.nextSegID(), h.segCap, h.table)
		s.Insert(id, score)
		h.insertSegmentAt(q, s)
		return
	}

	// Target is sorted with spare capacity: plain insert.
	if !t.Full() {
		t.Insert(id, score)
		return
	}

	// Target is full but every member shares this exact score: convert it
	// to a uniform segment and append.
	if t.Monotone() && t.Min() == score {
		u := h.convertToUniform(p)
		u.Insert(id, score)
		return
	}

	// Out of options: split the target in half and insert into whichever
	// half's range accepts the score.
	upper := t.Split(h.nextSegID())
	h.insertSegmentAt(p+1, upper)
	h.logger.LogSplit(t.ID(), upper.ID(), t.Len(), upper.Len())
	if score >= upper.Min() {
		upper.Insert(id, score)
	} else {
		t.Insert(id, score)
	}
}

// convertToUniform replaces the full, monotone sorted segment at position q
// with a newly constructed uniform segment over the same members.
func (h *Heap) convertToUniform(q int) *partition.Segment {
	s := h.segs[q]
	u := partition.NewUniform(h.nextSegID(), s.Min(), s.Members(), h.table)
	h.replaceSegmentAt(q, u)
	h.logger.LogConvert(s.ID(), u.ID(), u.Min())
	return u
}

// joinPartitions attempts to merge the segment at position p with its
// successor. When the boundary scores are equal, whichever side is already
// uniform absorbs the other (the absorbed side must be single-score, or
// uniformity would break); two single-score sorted segments on one score
// merge into a brand-new uniform segment. Otherwise two sorted segments
// merge directly when the combined length fits the fixed capacity.
func (h *Heap) joinPartitions(p int) {
	if p < 0 || p+1 >= len(h.segs) {
		return
	}
	a, b := h.segs[p], h.segs[p+1]
	boundaryEqual := a.Max() == b.Min()

	switch {
	case boundaryEqual && a.Kind() == partition.Uniform && b.Monotone():
		_ = a.Join(b) // uniform backing grows, cannot overflow
		h.removeSegmentAt(p + 1)
		h.logger.LogJoin(a.ID(), b.ID(), a.Len())

	case boundaryEqual && b.Kind() == partition.Uniform && a.Monotone():
		_ = b.Join(a)
		h.removeSegmentAt(p)
		h.logger.LogJoin(b.ID(), a.ID(), b.Len())

	case boundaryEqual && a.Kind() == partition.Sorted && b.Kind() == partition.Sorted &&
		a.Monotone() && b.Monotone():
		members := append(a.Members(), b.Members()...)
		u := partition.NewUniform(h.nextSegID(), a.Min(), members, h.table)
		h.replaceSegmentAt(p, u)
		h.removeSegmentAt(p + 1)
		h.logger.LogJoin(u.ID(), b.ID(), u.Len())

	case a.Kind() == partition.Sorted && b.Kind() == partition.Sorted &&
		a.Len()+b.Len() <= h.segCap:
		if err := a.Join(b); err != nil {
			h.logger.LogJoinOverflow(a.ID(), b.ID(), err)
			return
		}
		h.removeSegmentAt(p + 1)
		h.logger.LogJoin(a.ID(), b.ID(), a.Len())
	}
}
