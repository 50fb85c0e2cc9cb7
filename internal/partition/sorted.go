package partition

import (
	"github.com/obsius/score-heap/core"
	"github.com/obsius/score-heap/internal/order"
)

// search returns the position for the (score, id) probe within [0, n-1]:
// the exact match when present, otherwise the first position ordering at or
// after the probe (callers bump by one when the returned position still
// orders before it).
func (s *Segment) search(score core.Score, id core.ID) int {
	return order.Search(s.n, func(i int) int {
		return s.cmpAt(i, score, id)
	})
}

// insertSorted places id at pos, shifting the tail up by one slot.
func (s *Segment) insertSorted(id core.ID, score core.Score, pos int) {
	s.tab.SetScore(id, score)
	copy(s.ids[pos+1:s.n+1], s.ids[pos:s.n])
	s.ids[pos] = id
	s.n++
	s.tab.SetOwner(id, s.id)
	if pos == 0 {
		s.min = score
	}
}

// removeSorted locates id by its current side-table score and shifts the
// tail down by one slot. No shift happens when removing the last element.
func (s *Segment) removeSorted(id core.ID) {
	pos := s.search(s.tab.Score(id), id)
	copy(s.ids[pos:s.n-1], s.ids[pos+1:s.n])
	s.n--
	s.tab.Evict(id)
	if pos == 0 && s.n > 0 {
		s.min = s.tab.Score(s.ids[0])
	}
}

// updateSorted rescores id in place. When the new score violates local order
// against a neighbor the member is relocated with one shift spanning its old
// and new positions; this is O(distance), never a re-sort.
func (s *Segment) updateSorted(id core.ID, score core.Score) {
	old := s.tab.Score(id)
	if old == score {
		return
	}
	pos := s.search(old, id)
	s.tab.SetScore(id, score)

	switch {
	case pos+1 < s.n && s.cmpAt(pos+1, score, id) < 0:
		// Moving later: shift the span down over the vacated slot.
		j := pos
		for j+1 < s.n && s.cmpAt(j+1, score, id) < 0 {
			s.ids[j] = s.ids[j+1]
			j++
		}
		s.ids[j] = id
		if pos == 0 {
			s.min = s.tab.Score(s.ids[0])
		}
	case pos > 0 && s.cmpAt(pos-1, score, id) > 0:
		// Moving earlier: shift the span up over the vacated slot.
		j := pos
		for j > 0 && s.cmpAt(j-1, score, id) > 0 {
			s.ids[j] = s.ids[j-1]
			j--
		}
		s.ids[j] = id
		if j == 0 {
			s.min = score
		}
	default:
		if pos == 0 {
			s.min = score
		}
	}
}

// splitSorted halves the segment by element count. The upper half moves into
// a newly constructed segment (given the new identity) with the same fixed
// capacity; this segment keeps the lower half.
func (s *Segment) splitSorted(newID int32) *Segment {
	half := s.n / 2
	upper := NewSorted(newID, len(s.ids), s.tab)
	upper.n = copy(upper.ids, s.ids[half:s.n])
	for i := 0; i < upper.n; i++ {
		s.tab.SetOwner(upper.ids[i], newID)
	}
	upper.min = s.tab.Score(upper.ids[0])
	s.n = half
	return upper
}

// joinSorted merges another sorted segment's members into this one via the
// stable two-way merge. Fails with ErrOverflow when the result would not fit;
// nothing is moved in that case.
func (s *Segment) joinSorted(other *Segment) error {
	total := s.n + other.n
	if total > len(s.ids) {
		return ErrOverflow
	}
	merged := make([]core.ID, total)
	order.Merge(merged, s.ids[:s.n], other.ids[:other.n], func(x, y core.ID) int {
		sx, sy := s.tab.Score(x), s.tab.Score(y)
		switch {
		case sx < sy:
			return -1
		case sx > sy:
			return 1
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
	copy(s.ids, merged)
	s.n = total
	for i := 0; i < other.n; i++ {
		s.tab.SetOwner(other.ids[i], s.id)
	}
	s.min = s.tab.Score(s.ids[0])
	return nil
}
