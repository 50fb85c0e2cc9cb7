package partition

import (
	"errors"
	"fmt"

	"github.com/obsius/score-heap/core"
)

// ErrOverflow is returned when a join would exceed a sorted segment's fixed
// backing size. It signals a logic error in the orchestrator's sizing policy;
// the operation is aborted and no element is moved.
var ErrOverflow = errors.New("partition: join exceeds segment capacity")

// Kind discriminates the two segment variants.
type Kind uint8

const (
	// Sorted segments hold members with possibly differing scores, ordered
	// ascending by score then identifier in a fixed-capacity backing array.
	Sorted Kind = iota
	// Uniform segments hold members that all share one score, in a growable
	// append-only array with in-place tombstones.
	Uniform
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Uniform {
		return "uniform"
	}
	return "sorted"
}

// Segment is one partition of the global score order, in exactly one of the
// {Sorted, Uniform} states. Conversion between the two is replacement by a
// newly constructed Segment, never in-place mutation of kind.
//
// Segments are not safe for concurrent use; the owning heap serializes all
// access.
type Segment struct {
	id   int32
	kind Kind
	ids  []core.ID
	n    int // logical length; for Uniform this counts tombstoned slots too
	live int // Uniform only: members not tombstoned
	min  core.Score
	tab  *Table
}

// NewSorted creates an empty sorted segment with the given fixed capacity.
func NewSorted(id int32, capacity int, tab *Table) *Segment {
	return &Segment{
		id:   id,
		kind: Sorted,
		ids:  make([]core.ID, capacity),
		tab:  tab,
	}
}

// NewSortedFrom creates a sorted segment over members that are already
// ordered by (score, identifier) and whose scores are already recorded in the
// side table. Ownership records are written for every member.
func NewSortedFrom(id int32, capacity int, members []core.ID, tab *Table) *Segment {
	s := NewSorted(id, capacity, tab)
	s.n = copy(s.ids, members)
	for _, m := range members {
		tab.SetOwner(m, id)
	}
	if s.n > 0 {
		s.min = tab.Score(s.ids[0])
	}
	return s
}

// NewUniform creates a uniform segment holding members that all carry the
// given score. Ownership and slot records are written for every member.
func NewUniform(id int32, score core.Score, members []core.ID, tab *Table) *Segment {
	capacity := uniformMinCapacity
	for capacity < len(members) {
		capacity *= 2
	}
	s := &Segment{
		id:   id,
		kind: Uniform,
		ids:  make([]core.ID, capacity),
		n:    len(members),
		live: len(members),
		min:  score,
		tab:  tab,
	}
	copy(s.ids, members)
	for i, m := range members {
		tab.SetScore(m, score)
		tab.SetOwner(m, id)
		tab.SetSlot(m, int32(i))
	}
	return s
}

// ID returns the segment's stable identity.
func (s *Segment) ID() int32 { return s.id }

// Kind returns the segment variant.
func (s *Segment) Kind() Kind { return s.kind }

// Len returns the number of live members.
func (s *Segment) Len() int {
	if s.kind == Uniform {
		return s.live
	}
	return s.n
}

// Min returns the smallest score held by the segment.
func (s *Segment) Min() core.Score { return s.min }

// Max returns the largest score held by the segment: the shared score for a
// uniform segment, the tail member's score for a sorted one. Undefined while
// the segment is empty.
func (s *Segment) Max() core.Score {
	if s.kind == Uniform || s.n == 0 {
		return s.min
	}
	return s.tab.Score(s.ids[s.n-1])
}

// Full reports whether the segment cannot accept another member in place.
// Uniform segments grow on demand and are never full.
func (s *Segment) Full() bool {
	return s.kind == Sorted && s.n == len(s.ids)
}

// Monotone reports whether every member shares one score.
func (s *Segment) Monotone() bool { return s.Min() == s.Max() }

// Tombstones returns the number of removed-but-uncompacted slots.
func (s *Segment) Tombstones() int {
	if s.kind == Uniform {
		return s.n - s.live
	}
	return 0
}

// Members returns a copy of the live member identifiers, in ascending score
// order for a sorted segment and in slot order for a uniform one.
func (s *Segment) Members() []core.ID {
	out := make([]core.ID, 0, s.Len())
	for i := 0; i < s.n; i++ {
		if s.ids[i] != core.None {
			out = append(out, s.ids[i])
		}
	}
	return out
}

// Ascend calls yield for every live member in ascending score order and
// reports whether the iteration ran to completion. Members of a uniform
// segment share one score; their relative order is unspecified.
func (s *Segment) Ascend(yield func(core.ID) bool) bool {
	for i := 0; i < s.n; i++ {
		if s.ids[i] == core.None {
			continue
		}
		if !yield(s.ids[i]) {
			return false
		}
	}
	return true
}

// Next returns the live member with the highest score, or absent if the
// segment is empty. For uniform segments this lazily compacts tombstones off
// the tail; an emptied uniform segment resets its backing array to minimal
// size.
func (s *Segment) Next() (core.ID, bool) {
	if s.kind == Uniform {
		return s.nextUniform()
	}
	if s.n == 0 {
		return core.None, false
	}
	return s.ids[s.n-1], true
}

// Insert adds the identifier with the given score, locating the position by
// binary search in a sorted segment and appending in a uniform one. Callers
// must guarantee spare capacity for sorted segments and a matching score for
// uniform ones. The side table is updated before Insert returns.
func (s *Segment) Insert(id core.ID, score core.Score) {
	if s.kind == Uniform {
		s.tab.SetScore(id, score)
		s.appendUniform(id)
		return
	}
	pos := s.search(score, id)
	if s.n > 0 && s.cmpAt(pos, score, id) < 0 {
		pos++
	}
	s.insertSorted(id, score, pos)
}

// InsertAt is Insert with a caller-supplied position, for callers that
// already know the slot (append at the end, unshift at the front). The hint
// is trusted; a wrong hint breaks the segment's internal order.
func (s *Segment) InsertAt(id core.ID, score core.Score, pos int) {
	if s.kind == Uniform {
		s.tab.SetScore(id, score)
		s.appendUniform(id)
		return
	}
	s.insertSorted(id, score, pos)
}

// Remove takes the identifier out of the segment and marks it absent in the
// side table. Sorted removal shifts the tail down; uniform removal tombstones
// the slot in O(1) and defers compaction.
func (s *Segment) Remove(id core.ID) {
	if s.kind == Uniform {
		s.removeUniform(id)
		return
	}
	s.removeSorted(id)
}

// Update rescores an identifier in place. For a uniform segment this is a
// no-op: rescoring implies leaving the segment and must route through the
// orchestrator. For a sorted segment the member is relocated with a single
// shift spanning its old and new positions.
func (s *Segment) Update(id core.ID, score core.Score) {
	if s.kind == Uniform {
		return
	}
	s.updateSorted(id, score)
}

// Split halves a full sorted segment by element count, detaching the upper
// half into a new segment with the given identity. Not applicable to uniform
// segments.
func (s *Segment) Split(newID int32) *Segment {
	if s.kind == Uniform {
		return nil
	}
	return s.splitSorted(newID)
}

// Join merges another segment's live members into this one. A uniform
// receiver appends the other side's live slots (both sides must share the
// receiver's score); a sorted receiver merges another sorted segment and
// fails with ErrOverflow when the combined length exceeds its capacity.
// Ownership moves to the receiver for every transferred member.
func (s *Segment) Join(other *Segment) error {
	if s.kind == Uniform {
		s.joinUniform(other)
		return nil
	}
	return s.joinSorted(other)
}

// Audit verifies the segment's internal invariants against the side table.
func (s *Segment) Audit() error {
	if s.kind == Uniform {
		if s.live > s.n {
			return fmt.Errorf("uniform segment %d: live %d exceeds length %d", s.id, s.live, s.n)
		}
		live := 0
		for i := 0; i < s.n; i++ {
			id := s.ids[i]
			if id == core.None {
				continue
			}
			live++
			if got := s.tab.Score(id); got != s.min {
				return fmt.Errorf("uniform segment %d: member %d has score %d, segment score %d", s.id, id, got, s.min)
			}
			if owner := s.tab.Owner(id); owner != s.id {
				return fmt.Errorf("uniform segment %d: member %d owned by %d", s.id, id, owner)
			}
			if slot := s.tab.Slot(id); int(slot) != i {
				return fmt.Errorf("uniform segment %d: member %d slot hint %d, actual %d", s.id, id, slot, i)
			}
		}
		if live != s.live {
			return fmt.Errorf("uniform segment %d: live count %d, found %d", s.id, s.live, live)
		}
		return nil
	}

	if s.n > len(s.ids) {
		return fmt.Errorf("sorted segment %d: length %d exceeds capacity %d", s.id, s.n, len(s.ids))
	}
	for i := 0; i < s.n; i++ {
		id := s.ids[i]
		if id == core.None {
			return fmt.Errorf("sorted segment %d: tombstone at position %d", s.id, i)
		}
		if owner := s.tab.Owner(id); owner != s.id {
			return fmt.Errorf("sorted segment %d: member %d owned by %d", s.id, id, owner)
		}
		if i > 0 && s.cmpAt(i-1, s.tab.Score(id), id) >= 0 {
			return fmt.Errorf("sorted segment %d: order violated between positions %d and %d", s.id, i-1, i)
		}
	}
	if s.n > 0 && s.min != s.tab.Score(s.ids[0]) {
		return fmt.Errorf("sorted segment %d: min %d, head score %d", s.id, s.min, s.tab.Score(s.ids[0]))
	}
	return nil
}

// cmpAt orders the member at position i against the (score, id) probe,
// ascending by score then identifier. Comparisons are explicit; subtraction
// would wrap for scores near the int32 bounds.
func (s *Segment) cmpAt(i int, score core.Score, id core.ID) int {
	m := s.ids[i]
	switch ms := s.tab.Score(m); {
	case ms < score:
		return -1
	case ms > score:
		return 1
	}
	switch {
	case m < id:
		return -1
	case m > id:
		return 1
	}
	return 0
}
