package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsius/score-heap/core"
)

// buildSorted records scores in the table and constructs a sorted segment
// over the given members, which must already be ordered by (score, id).
func buildSorted(tab *Table, segID int32, capacity int, members []core.ID, scores []core.Score) *Segment {
	for i, m := range members {
		tab.SetScore(m, scores[i])
	}
	return NewSortedFrom(segID, capacity, members, tab)
}

func TestSortedSegment(t *testing.T) {
	t.Run("InsertKeepsOrder", func(t *testing.T) {
		tab := NewTable(16)
		s := NewSorted(1, 8, tab)

		s.Insert(3, 30)
		s.Insert(1, 10)
		s.Insert(2, 20)

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, core.Score(10), s.Min())
		assert.Equal(t, core.Score(30), s.Max())
		assert.Equal(t, []core.ID{1, 2, 3}, s.Members())
		assert.NoError(t, s.Audit())

		for _, id := range []core.ID{1, 2, 3} {
			assert.Equal(t, int32(1), tab.Owner(id))
		}
	})

	t.Run("EqualScoresOrderByIdentifier", func(t *testing.T) {
		tab := NewTable(16)
		s := NewSorted(1, 8, tab)

		s.Insert(7, 5)
		s.Insert(2, 5)
		s.Insert(4, 5)

		assert.Equal(t, []core.ID{2, 4, 7}, s.Members())
		assert.NoError(t, s.Audit())
	})

	t.Run("InsertAtHints", func(t *testing.T) {
		tab := NewTable(16)
		s := NewSorted(1, 8, tab)
		s.Insert(5, 50)

		// Append at the end, unshift at the front.
		s.InsertAt(6, 60, s.Len())
		s.InsertAt(4, 40, 0)

		assert.Equal(t, []core.ID{4, 5, 6}, s.Members())
		assert.Equal(t, core.Score(40), s.Min())
		assert.NoError(t, s.Audit())
	})

	t.Run("RemoveShiftsTail", func(t *testing.T) {
		tab := NewTable(16)
		s := buildSorted(tab, 1, 8, []core.ID{1, 2, 3}, []core.Score{10, 20, 30})

		s.Remove(2)
		assert.Equal(t, []core.ID{1, 3}, s.Members())
		assert.False(t, tab.Present(2))

		// Removing the head refreshes min.
		s.Remove(1)
		assert.Equal(t, core.Score(30), s.Min())
		assert.NoError(t, s.Audit())
	})

	t.Run("UpdateInPlace", func(t *testing.T) {
		tab := NewTable(16)
		s := buildSorted(tab, 1, 8, []core.ID{1, 2, 3}, []core.Score{10, 20, 30})

		// 20 -> 25 stays between its neighbors.
		s.Update(2, 25)
		assert.Equal(t, []core.ID{1, 2, 3}, s.Members())
		assert.Equal(t, core.Score(25), tab.Score(2))
		assert.NoError(t, s.Audit())
	})

	t.Run("UpdateRelocatesLater", func(t *testing.T) {
		tab := NewTable(16)
		s := buildSorted(tab, 1, 8, []core.ID{1, 2, 3}, []core.Score{10, 20, 30})

		s.Update(1, 99)
		assert.Equal(t, []core.ID{2, 3, 1}, s.Members())
		assert.Equal(t, core.Score(20), s.Min())
		assert.Equal(t, core.Score(99), s.Max())
		assert.NoError(t, s.Audit())
	})

	t.Run("UpdateRelocatesEarlier", func(t *testing.T) {
		tab := NewTable(16)
		s := buildSorted(tab, 1, 8, []core.ID{1, 2, 3}, []core.Score{10, 20, 30})

		s.Update(3, 1)
		assert.Equal(t, []core.ID{3, 1, 2}, s.Members())
		assert.Equal(t, core.Score(1), s.Min())
		assert.NoError(t, s.Audit())
	})

	t.Run("UpdateSameScoreNoop", func(t *testing.T) {
		tab := NewTable(16)
		s := buildSorted(tab, 1, 8, []core.ID{1, 2}, []core.Score{10, 20})

		s.Update(1, 10)
		assert.Equal(t, []core.ID{1, 2}, s.Members())
		assert.NoError(t, s.Audit())
	})

	t.Run("Split", func(t *testing.T) {
		tab := NewTable(16)
		s := buildSorted(tab, 1, 4, []core.ID{1, 2, 3, 4}, []core.Score{10, 20, 30, 40})
		require.True(t, s.Full())

		upper := s.Split(2)
		assert.Equal(t, []core.ID{1, 2}, s.Members())
		assert.Equal(t, []core.ID{3, 4}, upper.Members())
		assert.Equal(t, core.Score(30), upper.Min())
		assert.Equal(t, int32(2), tab.Owner(3))
		assert.Equal(t, int32(2), tab.Owner(4))
		assert.NoError(t, s.Audit())
		assert.NoError(t, upper.Audit())
	})

	t.Run("Join", func(t *testing.T) {
		tab := NewTable(16)
		a := buildSorted(tab, 1, 8, []core.ID{1, 3}, []core.Score{10, 30})
		b := buildSorted(tab, 2, 8, []core.ID{5, 6}, []core.Score{40, 50})

		require.NoError(t, a.Join(b))
		assert.Equal(t, []core.ID{1, 3, 5, 6}, a.Members())
		assert.Equal(t, int32(1), tab.Owner(5))
		assert.Equal(t, int32(1), tab.Owner(6))
		assert.NoError(t, a.Audit())
	})

	t.Run("JoinOverflow", func(t *testing.T) {
		tab := NewTable(16)
		a := buildSorted(tab, 1, 3, []core.ID{1, 2}, []core.Score{10, 20})
		b := buildSorted(tab, 2, 3, []core.ID{3, 4}, []core.Score{30, 40})

		err := a.Join(b)
		require.ErrorIs(t, err, ErrOverflow)

		// Nothing moved.
		assert.Equal(t, []core.ID{1, 2}, a.Members())
		assert.Equal(t, []core.ID{3, 4}, b.Members())
		assert.Equal(t, int32(2), tab.Owner(3))
	})

	t.Run("Next", func(t *testing.T) {
		tab := NewTable(16)
		s := buildSorted(tab, 1, 8, []core.ID{1, 2}, []core.Score{10, 20})

		id, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, core.ID(2), id)

		s.Remove(2)
		s.Remove(1)
		_, ok = s.Next()
		assert.False(t, ok)
	})
}

func TestUniformSegment(t *testing.T) {
	t.Run("Construct", func(t *testing.T) {
		tab := NewTable(16)
		u := NewUniform(1, 5, []core.ID{0, 1, 2, 3}, tab)

		assert.Equal(t, 4, u.Len())
		assert.Equal(t, core.Score(5), u.Min())
		assert.Equal(t, core.Score(5), u.Max())
		assert.True(t, u.Monotone())
		assert.False(t, u.Full())
		assert.NoError(t, u.Audit())

		for i := core.ID(0); i < 4; i++ {
			assert.Equal(t, int32(1), tab.Owner(i))
			assert.Equal(t, int32(i), tab.Slot(i))
			assert.Equal(t, core.Score(5), tab.Score(i))
		}
	})

	t.Run("InsertAppendsAndDoubles", func(t *testing.T) {
		tab := NewTable(64)
		u := NewUniform(1, 7, nil, tab)

		for id := core.ID(0); id < 20; id++ {
			u.Insert(id, 7)
		}
		assert.Equal(t, 20, u.Len())
		assert.NoError(t, u.Audit())
	})

	t.Run("RemoveTombstones", func(t *testing.T) {
		tab := NewTable(16)
		u := NewUniform(1, 5, []core.ID{0, 1, 2}, tab)

		u.Remove(1)
		assert.Equal(t, 2, u.Len())
		assert.Equal(t, 1, u.Tombstones())
		assert.False(t, tab.Present(1))
		assert.NoError(t, u.Audit())

		// Tail member is still 2; the tombstone sits in the middle.
		id, ok := u.Next()
		require.True(t, ok)
		assert.Equal(t, core.ID(2), id)
	})

	t.Run("NextCompactsLazily", func(t *testing.T) {
		tab := NewTable(16)
		u := NewUniform(1, 5, []core.ID{0, 1, 2, 3}, tab)

		u.Remove(3)
		u.Remove(2)

		id, ok := u.Next()
		require.True(t, ok)
		assert.Equal(t, core.ID(1), id)
		assert.Zero(t, u.Tombstones())
	})

	t.Run("DrainResets", func(t *testing.T) {
		tab := NewTable(16)
		u := NewUniform(1, 5, []core.ID{0, 1}, tab)

		u.Remove(0)
		u.Remove(1)
		_, ok := u.Next()
		assert.False(t, ok)
		assert.Equal(t, 0, u.Len())
	})

	t.Run("UpdateIsNoop", func(t *testing.T) {
		tab := NewTable(16)
		u := NewUniform(1, 5, []core.ID{0, 1}, tab)

		u.Update(0, 99)
		assert.Equal(t, core.Score(5), tab.Score(0))
		assert.NoError(t, u.Audit())
	})

	t.Run("JoinFiltersTombstones", func(t *testing.T) {
		tab := NewTable(16)
		a := NewUniform(1, 5, []core.ID{0, 1}, tab)
		b := NewUniform(2, 5, []core.ID{2, 3, 4}, tab)
		b.Remove(3)

		require.NoError(t, a.Join(b))
		assert.Equal(t, 4, a.Len())
		assert.Equal(t, []core.ID{0, 1, 2, 4}, a.Members())
		assert.Equal(t, int32(1), tab.Owner(2))
		assert.Equal(t, int32(1), tab.Owner(4))
		assert.NoError(t, a.Audit())
	})

	t.Run("JoinAbsorbsMonotoneSorted", func(t *testing.T) {
		tab := NewTable(16)
		u := NewUniform(1, 5, []core.ID{0, 1}, tab)
		s := buildSorted(tab, 2, 4, []core.ID{2, 3}, []core.Score{5, 5})

		require.NoError(t, u.Join(s))
		assert.Equal(t, []core.ID{0, 1, 2, 3}, u.Members())
		assert.NoError(t, u.Audit())
	})
}
