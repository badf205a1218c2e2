package meshtext

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package.
var (
	// ErrInvalidMesh is the sentinel for every malformed line the parser
	// rejects. Branch with errors.Is; the concrete ParseError carries the
	// line number and text.
	ErrInvalidMesh = errors.New("meshtext: invalid mesh description")

	// ErrNilMesh indicates Write was given a nil mesh.
	ErrNilMesh = errors.New("meshtext: mesh is nil")
)

// ParseError reports the first malformed line of a mesh description.
type ParseError struct {
	// Line is the 1-based line number in the input.
	Line int
	// Text is the offending line as read, without the trailing newline.
	Text string
	// Err is the underlying cause (field count, number syntax, mesh rule).
	Err error
}

// Error renders "meshtext: line N: <cause> (in "text")".
func (e *ParseError) Error() string {
	return fmt.Sprintf("meshtext: line %d: %v (in %q)", e.Line, e.Err, e.Text)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// Is marks every ParseError as an ErrInvalidMesh.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidMesh }

// Options configures parsing.
type Options struct {
	// MeshName names the resulting mesh. ParseFile defaults it to the file
	// base name; plain Parse defaults to "mesh".
	MeshName string
	// BothWays stores each described segment in both directions.
	BothWays bool
}

// Option adjusts Options.
type Option func(*Options)

// WithMeshName overrides the resulting mesh's name.
func WithMeshName(name string) Option {
	return func(o *Options) { o.MeshName = name }
}

// WithBothWays treats every line as a two-way connection.
func WithBothWays() Option {
	return func(o *Options) { o.BothWays = true }
}

// DefaultOptions returns the baseline configuration:
//   - MeshName: "mesh"
//   - BothWays: false (each line is one directed segment)
func DefaultOptions() Options {
	return Options{MeshName: "mesh"}
}
