// Package testutil provides testing utilities for score-heap.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic seeded RNG for generating workloads and a
// naive reference model to diff the heap against.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	id := rng.ID(capacity)
//	score := rng.Score(-50, 50)
//
// # Reference Model (Ground Truth)
//
//	m := testutil.NewModel()
//	m.Update(id, score)
//	want, ok := m.MaxScore()
package testutil
