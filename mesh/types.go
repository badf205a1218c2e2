package mesh

import "errors"

// Sentinel errors returned by Mesh operations.
var (
	// ErrEmptyPointName indicates an empty string where a point name was required.
	ErrEmptyPointName = errors.New("mesh: empty point name")
	// ErrPointNotFound indicates a lookup for a name the mesh does not contain.
	ErrPointNotFound = errors.New("mesh: point not found")
	// ErrNegativeDistance indicates Connect was given a negative kilometer value.
	ErrNegativeDistance = errors.New("mesh: negative segment distance")
	// ErrNonFiniteDistance indicates Connect was given NaN or an infinity.
	ErrNonFiniteDistance = errors.New("mesh: segment distance must be finite")
	// ErrSegmentRange indicates a segment endpoint index outside the point arena.
	ErrSegmentRange = errors.New("mesh: segment endpoint out of range")
	// ErrIndexMismatch indicates the name index and the point arena disagree.
	ErrIndexMismatch = errors.New("mesh: point index out of sync")
)

// PointID is the dense arena index of a Point inside one Mesh.
// IDs are assigned in insertion order, start at 0 and are never reused.
// A PointID is only meaningful for the Mesh that issued it.
type PointID int

// NoPoint marks the absence of a PointID (for example "no predecessor").
const NoPoint PointID = -1

// Point is a resolved handle: the arena index plus the human-readable name.
// Handles are plain values; compare them with ==.
type Point struct {
	ID   PointID
	Name string
}

// Segment is one directed connection with its length in kilometers.
// From and To index into the arena of the Mesh that owns the Segment.
type Segment struct {
	From PointID
	To   PointID
	Km   float64
}

// Mesh is a named set of Points and the directed Segments between them.
//
// The zero value is not usable; construct with New. Mutation (AddPoint,
// Connect) is not safe for concurrent use; any number of readers may query
// a Mesh concurrently once mutation has stopped.
type Mesh struct {
	name     string
	bothWays bool

	index    map[string]PointID // name -> arena slot
	names    []string           // arena slot -> name
	outgoing [][]Segment        // arena slot -> segments leaving it
	segments int                // total stored segments
}

// Options configures Mesh construction.
type Options struct {
	// BothWays makes every Connect record the reverse Segment as well.
	BothWays bool
}

// Option adjusts Options.
type Option func(*Options)

// WithBothWays makes Connect symmetric: each call stores both directions.
func WithBothWays() Option {
	return func(o *Options) { o.BothWays = true }
}

// DefaultOptions returns the baseline configuration:
//   - BothWays: false (segments are one-way)
func DefaultOptions() Options {
	return Options{BothWays: false}
}

// New creates an empty Mesh with the given name.
// The name is free-form; the catalog package requires it to be non-empty.
func New(name string, opts ...Option) *Mesh {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Mesh{
		name:     name,
		bothWays: o.BothWays,
		index:    make(map[string]PointID),
	}
}
