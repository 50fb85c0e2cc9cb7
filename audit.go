package scoreheap

import (
	"fmt"

	"github.com/obsius/score-heap/core"
	"github.com/obsius/score-heap/internal/bitmap"
	"github.com/obsius/score-heap/internal/partition"
)

// CheckInvariants verifies the heap's structural invariants: adjacent
// segments never overlap in score range, no identifier is owned by more than
// one segment, every segment's internal order agrees with the side table,
// and the identity-to-position mapping is current. It is a diagnostic for
// test suites and debugging, not part of the hot path; cost is linear in the
// key-space capacity.
//
// Every reported failure wraps ErrInvariantViolated.
func (h *Heap) CheckInvariants() error {
	if len(h.pos) != len(h.segs) {
		return fmt.Errorf("%w: position map holds %d segments, sequence holds %d",
			ErrInvariantViolated, len(h.pos), len(h.segs))
	}

	seen := bitmap.New()
	total := 0
	for i, s := range h.segs {
		if got, ok := h.pos[s.ID()]; !ok || got != i {
			return fmt.Errorf("%w: segment %d at position %d mapped to %d",
				ErrInvariantViolated, s.ID(), i, got)
		}
		if s.Len() == 0 {
			return fmt.Errorf("%w: segment %d is empty but still in the sequence",
				ErrInvariantViolated, s.ID())
		}
		if err := s.Audit(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvariantViolated, err)
		}
		if i+1 < len(h.segs) && s.Max() > h.segs[i+1].Min() {
			return fmt.Errorf("%w: segment %d max %d exceeds segment %d min %d",
				ErrInvariantViolated, s.ID(), s.Max(), h.segs[i+1].ID(), h.segs[i+1].Min())
		}

		var dup core.ID = core.None
		s.Ascend(func(id core.ID) bool {
			if seen.Contains(id) {
				dup = id
				return false
			}
			seen.Add(id)
			total++
			return true
		})
		if dup != core.None {
			return fmt.Errorf("%w: identifier %d owned by more than one segment",
				ErrInvariantViolated, dup)
		}
	}

	if total != h.count {
		return fmt.Errorf("%w: %d members across segments, count says %d",
			ErrInvariantViolated, total, h.count)
	}
	if got := seen.Cardinality(); got != uint64(total) {
		return fmt.Errorf("%w: membership bitmap holds %d identifiers, segments hold %d",
			ErrInvariantViolated, got, total)
	}

	for id := core.ID(0); int(id) < h.capacity; id++ {
		owner := h.table.Owner(id)
		if owner == partition.NoOwner {
			if seen.Contains(id) {
				return fmt.Errorf("%w: identifier %d is a member but marked absent",
					ErrInvariantViolated, id)
			}
			continue
		}
		if !seen.Contains(id) {
			return fmt.Errorf("%w: identifier %d marked owned by segment %d but is no member",
				ErrInvariantViolated, id, owner)
		}
		if _, ok := h.pos[owner]; !ok {
			return fmt.Errorf("%w: identifier %d owned by unknown segment %d",
				ErrInvariantViolated, id, owner)
		}
	}

	return nil
}
