package meshgen

import "errors"

// Sentinel errors returned by the generators.
var (
	// ErrTooFewPoints indicates a point count below the generator's minimum.
	ErrTooFewPoints = errors.New("meshgen: too few points")
	// ErrBadDegree indicates an out-degree outside [1, n-1].
	ErrBadDegree = errors.New("meshgen: out-degree out of range")
	// ErrBadDistance indicates a non-finite, negative or zero kilometer value.
	ErrBadDistance = errors.New("meshgen: distance out of range")
	// ErrBadGrid indicates grid dimensions below 1x2 / 2x1.
	ErrBadGrid = errors.New("meshgen: grid dimensions out of range")
)

// Options configures generated meshes.
type Options struct {
	// MeshName names the generated mesh. Default "generated".
	MeshName string
	// NamePrefix prefixes every point name. Default "P".
	NamePrefix string
	// BothWays generates symmetric meshes (every segment stored both ways).
	BothWays bool
}

// Option adjusts Options.
type Option func(*Options)

// WithMeshName overrides the generated mesh's name.
func WithMeshName(name string) Option {
	return func(o *Options) { o.MeshName = name }
}

// WithNamePrefix overrides the point-name prefix.
func WithNamePrefix(prefix string) Option {
	return func(o *Options) { o.NamePrefix = prefix }
}

// WithBothWays makes every generated segment traversable in both directions.
func WithBothWays() Option {
	return func(o *Options) { o.BothWays = true }
}

// DefaultOptions returns the baseline configuration:
//   - MeshName:   "generated"
//   - NamePrefix: "P"
//   - BothWays:   false
func DefaultOptions() Options {
	return Options{
		MeshName:   "generated",
		NamePrefix: "P",
	}
}
