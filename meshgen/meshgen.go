// Package meshgen generates deterministic delivery meshes: corridors,
// rings, grids and seeded random topologies.
//
// The generators exist for tests, benchmarks and demos that need meshes of
// controlled shape and size. Generation is fully deterministic: the same
// parameters (and seed, for Random) produce byte-identical meshes, point
// names included.
//
// Point names are zero-padded so lexicographic order matches construction
// order: a 12-point corridor is P00, P01, ..., P11.
package meshgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/verlaque/meshroute/mesh"
)

// Generator minima.
const (
	minCorridorPoints = 2
	minRingPoints     = 3
	minRandomPoints   = 2
)

// Corridor builds a chain of n points with km-kilometer hops:
//
//	P0 -> P1 -> ... -> P(n-1)
//
// n must be >= 2 and km finite and > 0.
//
// Complexity: O(n).
func Corridor(n int, km float64, opts ...Option) (*mesh.Mesh, error) {
	o := resolve(opts)
	if n < minCorridorPoints {
		return nil, fmt.Errorf("Corridor: n=%d < min=%d: %w", n, minCorridorPoints, ErrTooFewPoints)
	}
	if err := checkKm(km); err != nil {
		return nil, fmt.Errorf("Corridor: %w", err)
	}

	m := newMesh(o)
	width := digits(n - 1)
	for i := 1; i < n; i++ {
		if err := m.Connect(pointName(o, i-1, width), pointName(o, i, width), km); err != nil {
			return nil, fmt.Errorf("Corridor: %w", err)
		}
	}

	return m, nil
}

// Ring builds a closed cycle of n points with km-kilometer hops:
//
//	P0 -> P1 -> ... -> P(n-1) -> P0
//
// n must be >= 3 and km finite and > 0.
//
// Complexity: O(n).
func Ring(n int, km float64, opts ...Option) (*mesh.Mesh, error) {
	o := resolve(opts)
	if n < minRingPoints {
		return nil, fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingPoints, ErrTooFewPoints)
	}
	if err := checkKm(km); err != nil {
		return nil, fmt.Errorf("Ring: %w", err)
	}

	m := newMesh(o)
	width := digits(n - 1)
	for i := 1; i < n; i++ {
		if err := m.Connect(pointName(o, i-1, width), pointName(o, i, width), km); err != nil {
			return nil, fmt.Errorf("Ring: %w", err)
		}
	}
	if err := m.Connect(pointName(o, n-1, width), pointName(o, 0, width), km); err != nil {
		return nil, fmt.Errorf("Ring: %w", err)
	}

	return m, nil
}

// Grid builds a cols x rows lattice in row-major order. Each cell connects
// to its right and lower neighbor with km-kilometer segments.
//
// cols and rows must be >= 1 with at least two cells total; km must be
// finite and > 0.
//
// Complexity: O(cols * rows).
func Grid(cols, rows int, km float64, opts ...Option) (*mesh.Mesh, error) {
	o := resolve(opts)
	if cols < 1 || rows < 1 || cols*rows < 2 {
		return nil, fmt.Errorf("Grid: %dx%d: %w", cols, rows, ErrBadGrid)
	}
	if err := checkKm(km); err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}

	m := newMesh(o)
	width := digits(cols*rows - 1)
	cell := func(r, c int) string { return pointName(o, r*cols+c, width) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := m.Connect(cell(r, c), cell(r, c+1), km); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
			if r+1 < rows {
				if err := m.Connect(cell(r, c), cell(r+1, c), km); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
		}
	}

	return m, nil
}

// Random builds a mesh of n points where every point gets outDegree
// outgoing segments to distinct other points, with kilometer lengths drawn
// uniformly from (0, maxKm]. The same (n, outDegree, maxKm, seed) tuple
// always produces the identical mesh.
//
// n must be >= 2, outDegree in [1, n-1], maxKm finite and > 0.
//
// Complexity: O(n * outDegree) expected.
func Random(n, outDegree int, maxKm float64, seed int64, opts ...Option) (*mesh.Mesh, error) {
	o := resolve(opts)
	if n < minRandomPoints {
		return nil, fmt.Errorf("Random: n=%d < min=%d: %w", n, minRandomPoints, ErrTooFewPoints)
	}
	if outDegree < 1 || outDegree > n-1 {
		return nil, fmt.Errorf("Random: outDegree=%d with n=%d: %w", outDegree, n, ErrBadDegree)
	}
	if err := checkKm(maxKm); err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	m := newMesh(o)
	width := digits(n - 1)

	// Register all points first so every name exists even if isolated in
	// the outgoing direction.
	for i := 0; i < n; i++ {
		if _, err := m.AddPoint(pointName(o, i, width)); err != nil {
			return nil, fmt.Errorf("Random: %w", err)
		}
	}

	// Per point: outDegree distinct targets, rerolling self and repeats.
	targets := make(map[int]struct{}, outDegree)
	for i := 0; i < n; i++ {
		for k := range targets {
			delete(targets, k)
		}
		for len(targets) < outDegree {
			j := rng.Intn(n)
			if j == i {
				continue
			}
			if _, dup := targets[j]; dup {
				continue
			}
			targets[j] = struct{}{}
			km := rng.Float64() * maxKm
			if km == 0 {
				km = maxKm
			}
			if err := m.Connect(pointName(o, i, width), pointName(o, j, width), km); err != nil {
				return nil, fmt.Errorf("Random: %w", err)
			}
		}
	}

	return m, nil
}

// resolve folds functional options over the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newMesh creates the target mesh honoring the BothWays option.
func newMesh(o Options) *mesh.Mesh {
	if o.BothWays {
		return mesh.New(o.MeshName, mesh.WithBothWays())
	}
	return mesh.New(o.MeshName)
}

// checkKm validates a kilometer parameter shared by all generators.
func checkKm(km float64) error {
	if km <= 0 || math.IsNaN(km) || math.IsInf(km, 0) {
		return fmt.Errorf("km=%v: %w", km, ErrBadDistance)
	}
	return nil
}

// digits returns the decimal width of the largest index, for zero-padding.
func digits(max int) int {
	w := 1
	for max >= 10 {
		max /= 10
		w++
	}
	return w
}

// pointName renders the zero-padded name of point i.
func pointName(o Options, i, width int) string {
	return fmt.Sprintf("%s%0*d", o.NamePrefix, width, i)
}
