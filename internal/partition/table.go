package partition

import "github.com/obsius/score-heap/core"

// NoOwner marks a side-table record whose identifier is not a member of any
// segment.
const NoOwner int32 = -1

// record is the side-table state for one identifier: its current score, the
// identity of the owning segment and, for uniform segments only, the slot the
// identifier occupies inside the segment's backing array.
type record struct {
	score core.Score
	owner int32
	slot  int32
}

// Table is the shared side table: one flat record per identifier in
// [0, capacity). It is sized exactly once at construction and never resized.
// The heap owns the table exclusively; segments hold a reference and update
// it synchronously whenever an identifier moves.
type Table struct {
	recs []record
}

// NewTable creates a side table for a key space of the given capacity with
// every identifier marked absent.
func NewTable(capacity int) *Table {
	recs := make([]record, capacity)
	for i := range recs {
		recs[i].owner = NoOwner
		recs[i].slot = -1
	}
	return &Table{recs: recs}
}

// Capacity returns the fixed size of the key space.
func (t *Table) Capacity() int { return len(t.recs) }

// Score returns the identifier's current score. Only meaningful while the
// identifier is present or immediately after SetScore.
func (t *Table) Score(id core.ID) core.Score { return t.recs[id].score }

// SetScore records the identifier's current score.
func (t *Table) SetScore(id core.ID, score core.Score) { t.recs[id].score = score }

// Owner returns the identity of the owning segment, or NoOwner.
func (t *Table) Owner(id core.ID) int32 { return t.recs[id].owner }

// SetOwner records the identifier's owning segment.
func (t *Table) SetOwner(id core.ID, owner int32) { t.recs[id].owner = owner }

// Slot returns the identifier's position inside its uniform segment's
// backing array, or -1.
func (t *Table) Slot(id core.ID) int32 { return t.recs[id].slot }

// SetSlot records the identifier's slot inside a uniform segment.
func (t *Table) SetSlot(id core.ID, slot int32) { t.recs[id].slot = slot }

// Present reports whether the identifier is currently a member of a segment.
func (t *Table) Present(id core.ID) bool { return t.recs[id].owner != NoOwner }

// Evict marks the identifier absent. The score is left untouched; it is
// meaningless until the identifier is re-inserted.
func (t *Table) Evict(id core.ID) {
	t.recs[id].owner = NoOwner
	t.recs[id].slot = -1
}
