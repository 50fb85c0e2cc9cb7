package scoreheap

// Options contains configuration options for a Heap.
type Options struct {
	// SegmentCapacity fixes the maximum member count of a sorted segment.
	// Zero derives it from the initial entry count (clamped between a
	// minimum, a density-derived value and a maximum). It never changes
	// after construction.
	SegmentCapacity int

	// Logger receives structural events (segment creation, split, join,
	// conversion) at debug level. Nil disables logging.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for a Heap.
var DefaultOptions = Options{}

// WithSegmentCapacity overrides the derived sorted-segment capacity.
// Values below 2 fail construction: a segment must be splittable in half.
func WithSegmentCapacity(n int) func(o *Options) {
	return func(o *Options) {
		o.SegmentCapacity = n
	}
}

// WithLogger configures the logger used for structural events.
func WithLogger(l *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = l
	}
}
