package scoreheap

import (
	"errors"
	"fmt"

	"github.com/obsius/score-heap/core"
)

var (
	// ErrInvalidCapacity is returned when a heap is constructed with a
	// non-positive key-space capacity.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrInvalidSegmentCapacity is returned when an explicitly configured
	// segment capacity is too small to split.
	ErrInvalidSegmentCapacity = errors.New("segment capacity must be at least 2")

	// ErrInvariantViolated is wrapped by every failure CheckInvariants
	// reports.
	ErrInvariantViolated = errors.New("invariant violated")
)

// ErrIdentifierOutOfRange indicates an identifier outside [0, capacity).
// The side table is sized exactly to the capacity fixed at construction, so
// out-of-range identifiers are rejected before any state is touched.
type ErrIdentifierOutOfRange struct {
	ID       core.ID
	Capacity int
}

func (e *ErrIdentifierOutOfRange) Error() string {
	return fmt.Sprintf("identifier %d out of range [0, %d)", e.ID, e.Capacity)
}

// ErrDuplicateIdentifier indicates that an identifier appeared more than
// once in the initial pairs passed to New.
type ErrDuplicateIdentifier struct {
	ID core.ID
}

func (e *ErrDuplicateIdentifier) Error() string {
	return fmt.Sprintf("duplicate identifier %d", e.ID)
}
