package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsius/score-heap/core"
)

func TestRNGReproducible(t *testing.T) {
	rng := NewRNG(4711)
	assert.Equal(t, int64(4711), rng.Seed())

	first := make([]core.Score, 16)
	for i := range first {
		first[i] = rng.Score(-100, 100)
	}

	rng.Reset()
	for i := range first {
		assert.Equal(t, first[i], rng.Score(-100, 100))
	}
}

func TestRNGBounds(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 1000; i++ {
		id := rng.ID(10)
		assert.GreaterOrEqual(t, id, core.ID(0))
		assert.Less(t, id, core.ID(10))

		s := rng.Score(-3, 3)
		assert.GreaterOrEqual(t, s, core.Score(-3))
		assert.LessOrEqual(t, s, core.Score(3))
	}
}

func TestModel(t *testing.T) {
	m := NewModel()

	_, ok := m.MaxScore()
	assert.False(t, ok)
	assert.False(t, m.Remove(1))

	m.Update(1, 10)
	m.Update(2, 20)
	m.Update(1, 30) // rescore, not insert
	assert.Equal(t, 2, m.Len())

	best, ok := m.MaxScore()
	require.True(t, ok)
	assert.Equal(t, core.Score(30), best)

	s, ok := m.Score(1)
	require.True(t, ok)
	assert.Equal(t, core.Score(30), s)

	assert.True(t, m.Remove(1))
	assert.False(t, m.Remove(1))
	assert.False(t, m.Contains(1))
	assert.True(t, m.Contains(2))
	assert.Equal(t, 1, m.Len())
}
