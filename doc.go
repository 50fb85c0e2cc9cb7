// Package scoreheap provides a mutable priority index over a dense,
// fixed-size key space for Go.
//
// Entry identifiers 0..capacity-1 each carry a 32-bit signed score. The heap
// supports retrieving the identifier with the globally maximum score,
// inserting or rescoring an identifier, and removing one, under workloads
// where scores change extremely frequently. No operation ever re-sorts the
// whole index: the key space is partitioned into segments ordered by score
// range, and only the segment containing a changed entry is touched.
//
// # Quick Start
//
//	h, _ := scoreheap.New([]scoreheap.Pair{
//	    {ID: 0, Score: 10},
//	    {ID: 1, Score: 25},
//	    {ID: 2, Score: 10},
//	}, 1024)
//
//	id, _ := h.Next()          // 1 (score 25)
//	_ = h.Update(2, 99)        // rescore entry 2
//	id, _ = h.Next()           // 2
//	h.Remove(2)
//	id, _ = h.Next()           // 1 again
//
// # Segments
//
// Runs of entries with one shared score are held in uniform segments:
// membership changes are O(1), removal tombstones in place and compaction is
// deferred to the read path. Mixed runs live in sorted segments with a fixed
// capacity derived once at construction; a rescore moves an entry by a single
// local shift, and segments split when full and join when sparse.
//
// # Concurrency
//
// A Heap assumes one logical caller. Nothing locks internally; concurrent
// callers must serialize externally.
package scoreheap
