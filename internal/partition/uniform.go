package partition

import "github.com/obsius/score-heap/core"

// uniformMinCapacity is the backing size a uniform segment starts from and
// resets to after draining.
const uniformMinCapacity = 8

// appendUniform adds id at the end, doubling the backing array first when
// full. O(1) amortized.
func (s *Segment) appendUniform(id core.ID) {
	if s.n == len(s.ids) {
		grown := make([]core.ID, max(2*len(s.ids), uniformMinCapacity))
		copy(grown, s.ids[:s.n])
		s.ids = grown
	}
	s.ids[s.n] = id
	s.tab.SetOwner(id, s.id)
	s.tab.SetSlot(id, int32(s.n))
	s.n++
	s.live++
}

// removeUniform tombstones the member's slot in place using the side table's
// slot hint. The slot is not compacted; Next pays for cleanup lazily.
func (s *Segment) removeUniform(id core.ID) {
	s.ids[s.tab.Slot(id)] = core.None
	s.live--
	s.tab.Evict(id)
}

// nextUniform returns the live tail member, scanning backward over any
// tombstoned tail slots and shrinking the logical length as it goes. A
// drained segment resets its backing array to minimal size.
func (s *Segment) nextUniform() (core.ID, bool) {
	for s.n > 0 && s.ids[s.n-1] == core.None {
		s.n--
	}
	if s.n == 0 {
		s.ids = make([]core.ID, uniformMinCapacity)
		return core.None, false
	}
	return s.ids[s.n-1], true
}

// joinUniform appends the other segment's live slots, filtering tombstones in
// the transferred region and recording fresh slot hints for every appended
// member. Both sides must carry this segment's score.
func (s *Segment) joinUniform(other *Segment) {
	for i := 0; i < other.n; i++ {
		id := other.ids[i]
		if id == core.None {
			continue
		}
		s.appendUniform(id)
	}
}
