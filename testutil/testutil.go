package testutil

import (
	"math/rand"

	"github.com/obsius/score-heap/core"
)

// RNG encapsulates a seeded random number generator so randomized tests are
// reproducible from their seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// ID returns a pseudo-random identifier in [0, capacity).
func (r *RNG) ID(capacity int) core.ID {
	return core.ID(r.rand.Intn(capacity))
}

// Score returns a pseudo-random score in [lo, hi].
func (r *RNG) Score(lo, hi core.Score) core.Score {
	return lo + core.Score(r.rand.Int63n(int64(hi)-int64(lo)+1))
}

// Shuffle pseudo-randomizes the order of elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.rand.Shuffle(n, swap)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	return r.rand.Perm(n)
}

// Model is the naive ground truth the heap is diffed against: a plain map
// from identifier to score with linear-scan queries.
type Model struct {
	scores map[core.ID]core.Score
}

// NewModel creates an empty reference model.
func NewModel() *Model {
	return &Model{scores: make(map[core.ID]core.Score)}
}

// Update inserts or rescores an identifier.
func (m *Model) Update(id core.ID, score core.Score) {
	m.scores[id] = score
}

// Remove takes an identifier out, reporting whether it was present.
func (m *Model) Remove(id core.ID) bool {
	if _, ok := m.scores[id]; !ok {
		return false
	}
	delete(m.scores, id)
	return true
}

// Contains reports whether the identifier is present.
func (m *Model) Contains(id core.ID) bool {
	_, ok := m.scores[id]
	return ok
}

// Score returns the identifier's score.
func (m *Model) Score(id core.ID) (core.Score, bool) {
	s, ok := m.scores[id]
	return s, ok
}

// Len returns the number of present identifiers.
func (m *Model) Len() int {
	return len(m.scores)
}

// MaxScore returns the maximum score among present identifiers.
func (m *Model) MaxScore() (core.Score, bool) {
	first := true
	var best core.Score
	for _, s := range m.scores {
		if first || s > best {
			best = s
			first = false
		}
	}
	return best, !first
}
