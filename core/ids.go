package core

// ID is a dense identifier for one entry in the key space.
// It is strictly 32-bit; valid values lie in [0, capacity) where capacity is
// fixed at heap construction. Used for all hot-path structures (segment
// backing arrays, the side table, bitmaps).
type ID int32

// Score is the 32-bit signed priority carried by an entry.
type Score int32

// None marks the absence of an ID: an evicted side-table owner or a
// tombstoned slot inside a uniform segment's backing array.
const None ID = -1
