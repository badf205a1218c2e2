// Package dijkstra defines the types and configuration options for the
// single-origin shortest-route search over a delivery mesh.
//
// ShortestFrom computes the minimum kilometer distance from one origin Point
// to every reachable Point of a mesh.Mesh. Distances are float64 kilometers;
// unreachable Points report math.Inf(1).
//
// Options:
//
//   - MaxDistanceKm: cap on explored distance; Points farther than this are
//     left unsettled (reported unreachable). Default: no cap.
//
// Errors (sentinel):
//
//   - ErrNilMesh         if the provided mesh pointer is nil.
//   - ErrOriginNotFound  if the origin handle does not belong to the mesh.
//   - ErrNegativeSegment if a Segment with a negative distance is detected.
//   - ErrBadMaxDistance  if MaxDistanceKm is negative or NaN.
package dijkstra

import (
	"errors"
	"math"

	"github.com/verlaque/meshroute/mesh"
)

// Sentinel errors returned by ShortestFrom.
var (
	// ErrNilMesh indicates that a nil *mesh.Mesh was passed to ShortestFrom.
	ErrNilMesh = errors.New("dijkstra: mesh is nil")

	// ErrOriginNotFound indicates that the origin handle does not resolve
	// inside the provided mesh (wrong mesh, stale handle or zero value).
	ErrOriginNotFound = errors.New("dijkstra: origin point not found in mesh")

	// ErrNegativeSegment indicates the pre-scan found a Segment with a
	// negative distance. mesh.Connect rejects those, so this only fires
	// when the mesh was corrupted behind its construction API.
	ErrNegativeSegment = errors.New("dijkstra: negative segment distance")

	// ErrBadMaxDistance indicates that MaxDistanceKm was set to a negative
	// or NaN value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistanceKm must be non-negative")
)

// Options configures the behavior of ShortestFrom.
//
// MaxDistanceKm – cap on the distance to explore. Points whose shortest
// distance exceeds the cap stay unsettled and report as unreachable.
// Must be ≥ 0. Default is math.Inf(1) (no cap).
type Options struct {
	MaxDistanceKm float64 // Maximum kilometer distance to explore
}

// Option represents a functional option for configuring ShortestFrom.
type Option func(*Options)

// WithMaxDistance caps exploration at km kilometers from the origin.
// Points beyond the cap are reported unreachable.
// Must pass a non-negative value; negative or NaN values cause ErrBadMaxDistance.
// Default (if not set) is math.Inf(1) (no cap).
func WithMaxDistance(km float64) Option {
	return func(o *Options) {
		if km < 0 || math.IsNaN(km) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistanceKm = km
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//   - MaxDistanceKm: math.Inf(1) (no distance cap; explore all reachable).
func DefaultOptions() Options {
	return Options{
		MaxDistanceKm: math.Inf(1),
	}
}

// Tree is the result of one ShortestFrom run: the shortest-route tree rooted
// at the origin. It stores, per arena slot, the settled distance and the
// predecessor on the cheapest route. A Tree is immutable and safe for
// concurrent readers; it stays valid as long as the mesh it was computed
// from is not mutated.
type Tree struct {
	origin mesh.Point
	dist   []float64      // arena slot -> km from origin (math.Inf(1) if unreachable)
	prev   []mesh.PointID // arena slot -> predecessor (mesh.NoPoint at origin / unreachable)
}

// Origin returns the Point the tree is rooted at.
func (t *Tree) Origin() mesh.Point { return t.origin }

// DistanceTo returns the shortest distance in kilometers from the origin to
// id, or math.Inf(1) when id is unreachable or out of range.
func (t *Tree) DistanceTo(id mesh.PointID) float64 {
	if id < 0 || int(id) >= len(t.dist) {
		return math.Inf(1)
	}
	return t.dist[id]
}

// Reachable reports whether id was settled within the distance cap.
// The origin is always reachable from itself (distance 0).
func (t *Tree) Reachable(id mesh.PointID) bool {
	return !math.IsInf(t.DistanceTo(id), 1)
}

// PredecessorOf returns the Point preceding id on the cheapest route from
// the origin. ok is false at the origin itself and for unreachable or
// out-of-range ids; walking predecessors from any reachable Point therefore
// terminates at the origin.
func (t *Tree) PredecessorOf(id mesh.PointID) (mesh.PointID, bool) {
	if id < 0 || int(id) >= len(t.prev) || t.prev[id] == mesh.NoPoint {
		return mesh.NoPoint, false
	}
	return t.prev[id], true
}
