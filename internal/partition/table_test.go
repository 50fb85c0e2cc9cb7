package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obsius/score-heap/core"
)

func TestTable(t *testing.T) {
	t.Run("StartsAbsent", func(t *testing.T) {
		tab := NewTable(4)
		assert.Equal(t, 4, tab.Capacity())
		for id := core.ID(0); id < 4; id++ {
			assert.False(t, tab.Present(id))
			assert.Equal(t, NoOwner, tab.Owner(id))
			assert.Equal(t, int32(-1), tab.Slot(id))
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		tab := NewTable(4)
		tab.SetScore(2, -17)
		tab.SetOwner(2, 9)
		tab.SetSlot(2, 3)

		assert.Equal(t, core.Score(-17), tab.Score(2))
		assert.Equal(t, int32(9), tab.Owner(2))
		assert.Equal(t, int32(3), tab.Slot(2))
		assert.True(t, tab.Present(2))
	})

	t.Run("EvictKeepsScore", func(t *testing.T) {
		tab := NewTable(4)
		tab.SetScore(1, 5)
		tab.SetOwner(1, 0)
		tab.SetSlot(1, 0)
		tab.Evict(1)

		assert.False(t, tab.Present(1))
		assert.Equal(t, NoOwner, tab.Owner(1))
		assert.Equal(t, int32(-1), tab.Slot(1))
		assert.Equal(t, core.Score(5), tab.Score(1))
	})
}
