// Package partition implements the building blocks of the partitioned score
// index: the shared per-identifier side table and the two segment variants.
//
// A segment covers a contiguous, bounded slice of the global score order. It
// is either Sorted (members may carry differing scores, kept ordered by
// score then identifier) or Uniform (every member shares one score; removal
// tombstones in place and compaction is deferred to the read path).
//
// Segments never talk to each other; the orchestrator owns the sequence and
// routes every mutation. The side table is owned by the orchestrator too and
// shared with segments by reference, so ownership information is never stale.
package partition
