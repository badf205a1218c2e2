package route

import (
	"fmt"
	"math"

	"github.com/verlaque/meshroute/dijkstra"
	"github.com/verlaque/meshroute/mesh"
)

// Cost converts a route length into money:
//
//	distanceKm / autonomyKmPerLiter * fuelPricePerLiter
//
// rounded half away from zero to two decimals.
//
// distanceKm must be finite and non-negative; autonomy and price must be
// finite and strictly positive. Violations wrap ErrInvalidParameter.
func Cost(distanceKm, autonomyKmPerLiter, fuelPricePerLiter float64) (float64, error) {
	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return 0, fmt.Errorf("%w: DistanceKm: must be finite and non-negative, got %v",
			ErrInvalidParameter, distanceKm)
	}
	if autonomyKmPerLiter <= 0 || math.IsNaN(autonomyKmPerLiter) || math.IsInf(autonomyKmPerLiter, 0) {
		return 0, fmt.Errorf("%w: AutonomyKmPerLiter: must be finite and greater than 0, got %v",
			ErrInvalidParameter, autonomyKmPerLiter)
	}
	if fuelPricePerLiter <= 0 || math.IsNaN(fuelPricePerLiter) || math.IsInf(fuelPricePerLiter, 0) {
		return 0, fmt.Errorf("%w: FuelPricePerLiter: must be finite and greater than 0, got %v",
			ErrInvalidParameter, fuelPricePerLiter)
	}

	liters := distanceKm / autonomyKmPerLiter

	return roundCents(liters * fuelPricePerLiter), nil
}

// roundCents rounds half away from zero to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildPath reconstructs the cheapest route from the tree's origin to dest
// by walking predecessor links backwards, returning point names in travel
// order (origin first). A trivial route (dest == origin) has length 1.
//
// The tree must have been computed by dijkstra.ShortestFrom over m; a tree
// from another mesh is rejected with ErrMeshMismatch. Unreachable
// destinations return ErrNoPath.
//
// Complexity: O(L) for a route of L points.
func BuildPath(m *mesh.Mesh, t *dijkstra.Tree, dest mesh.Point) ([]string, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if t == nil {
		return nil, ErrNilTree
	}

	// The tree's origin must resolve in m, otherwise its predecessor ids
	// index a different arena.
	origin := t.Origin()
	if origin.Name == "" || m.PointName(origin.ID) != origin.Name {
		return nil, fmt.Errorf("%w: tree rooted at %q", ErrMeshMismatch, origin.Name)
	}
	if dest.Name == "" || m.PointName(dest.ID) != dest.Name {
		return nil, fmt.Errorf("%w: %q", mesh.ErrPointNotFound, dest.Name)
	}
	if !t.Reachable(dest.ID) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, origin.Name, dest.Name)
	}

	// Walk destination -> origin, then reverse in place.
	names := []string{dest.Name}
	for at := dest.ID; ; {
		prev, ok := t.PredecessorOf(at)
		if !ok {
			break
		}
		names = append(names, m.PointName(prev))
		at = prev
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}

	return names, nil
}

// Cheapest answers one delivery question end to end: validate Params, run
// the shortest-route search from the origin, reconstruct the cheapest route
// to the destination and price it.
//
// Validation order:
//  1. Params (ErrInvalidParameter) — checked before any lookup or search.
//  2. Mesh non-nil (ErrNilMesh).
//  3. Origin, then destination resolution (mesh.ErrPointNotFound).
//  4. Reachability (ErrNoPath).
//
// Complexity: O((V + E) log V), dominated by the search.
func Cheapest(m *mesh.Mesh, p Params) (*RouteResult, error) {
	// 1) Parameters first, before touching the mesh.
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// 2) Mesh must exist.
	if m == nil {
		return nil, ErrNilMesh
	}

	// 3) Resolve both endpoints; each miss names the offending side.
	origin, err := m.FindPoint(p.Origin)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	dest, err := m.FindPoint(p.Destination)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	// 4) One search from the origin settles every reachable point.
	tree, err := dijkstra.ShortestFrom(m, origin)
	if err != nil {
		return nil, err
	}

	// 5) Reconstruct the cheapest route.
	names, err := BuildPath(m, tree, dest)
	if err != nil {
		return nil, err
	}

	// 6) Price it.
	distance := tree.DistanceTo(dest.ID)
	cost, err := Cost(distance, p.AutonomyKmPerLiter, p.FuelPricePerLiter)
	if err != nil {
		return nil, err
	}

	return &RouteResult{
		MeshName:           m.Name(),
		Route:              names,
		DistanceKm:         distance,
		AutonomyKmPerLiter: p.AutonomyKmPerLiter,
		FuelPricePerLiter:  p.FuelPricePerLiter,
		Cost:               cost,
	}, nil
}
