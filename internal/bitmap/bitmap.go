// Package bitmap wraps a 32-bit Roaring Bitmap over entry identifiers. Used
// by the heap's construction-time duplicate validation and by the audit for
// the cross-segment uniqueness invariant.
package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/obsius/score-heap/core"
)

// Set is a compressed set of entry identifiers. Identifiers are dense and
// non-negative, so they map directly onto the bitmap's uint32 domain.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Add adds an identifier to the set.
func (s *Set) Add(id core.ID) {
	s.rb.Add(uint32(id))
}

// Remove removes an identifier from the set.
func (s *Set) Remove(id core.ID) {
	s.rb.Remove(uint32(id))
}

// Contains checks if an identifier is in the set.
func (s *Set) Contains(id core.ID) bool {
	return s.rb.Contains(uint32(id))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of identifiers in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Iterator returns an iterator over the set in ascending identifier order.
func (s *Set) Iterator() iter.Seq[core.ID] {
	return func(yield func(core.ID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.ID(it.Next())) {
				return
			}
		}
	}
}
