package simplex

import "math"

// DEFAULTS - single source of truth for zero-value behavior of the
// vertex-enumeration helpers.
const (
	// DefaultPointTolerance is the per-coordinate tolerance under which two
	// enumerated points count as the same vertex.
	DefaultPointTolerance = 1e-3

	// DefaultMaxVertices bounds the depth-first vertex enumeration. The
	// exploration is exponential in the worst case; the cap keeps
	// pathological inputs from running away.
	DefaultMaxVertices = 4096
)

const (
	panicToleranceInvalid   = "simplex: WithPointTolerance: eps must be finite, non-negative"
	panicMaxVerticesInvalid = "simplex: WithMaxVertices: n must be positive"
)

// Option mutates enumeration options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	pointTolerance float64
	maxVertices    int
}

// WithPointTolerance sets the per-coordinate tolerance for vertex
// deduplication.
func WithPointTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *options) { o.pointTolerance = eps }
}

// WithMaxVertices caps how many distinct vertices the enumeration records.
func WithMaxVertices(n int) Option {
	if n <= 0 {
		panic(panicMaxVerticesInvalid)
	}
	return func(o *options) { o.maxVertices = n }
}

func gatherOptions(opts ...Option) options {
	o := options{
		pointTolerance: DefaultPointTolerance,
		maxVertices:    DefaultMaxVertices,
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
