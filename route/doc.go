// Package route turns shortest-route trees into answers a dispatcher can
// use: the ordered point sequence of the cheapest route and what the trip
// costs in money.
//
// The central entry point is Cheapest, which runs the whole pipeline for
// one delivery question:
//
//	params := route.Params{
//	    Origin:             "A",
//	    Destination:        "D",
//	    AutonomyKmPerLiter: 10,
//	    FuelPricePerLiter:  2.50,
//	}
//	res, err := route.Cheapest(m, params)
//	// res.Route       = ["A", "B", "D"]
//	// res.DistanceKm  = 25
//	// res.Cost        = 6.25
//
// The pieces are exported separately for callers that fan one origin out to
// many destinations: dijkstra.ShortestFrom once, then BuildPath and Cost per
// destination.
//
// Cost model
//
// A vehicle with autonomy of K km per liter and a fuel price of P per liter
// pays distance / K * P for a trip. Cost rounds the result half away from
// zero to two decimals; the distance itself is never rounded.
//
// Validation
//
// Params are checked before any search runs: origin and destination must be
// non-empty, autonomy and fuel price strictly positive and finite. Failures
// wrap ErrInvalidParameter, so one errors.Is covers every bad-input shape.
//
// Errors (sentinel)
//
//   - ErrNilMesh          — Cheapest/BuildPath given a nil mesh.
//   - ErrNilTree          — BuildPath given a nil tree.
//   - ErrMeshMismatch     — BuildPath given a tree computed from another mesh.
//   - ErrNoPath           — destination exists but no segment chain reaches it.
//   - ErrInvalidParameter — Params or Cost arguments out of range.
//
// Missing points surface as mesh.ErrPointNotFound, distinguishable from
// ErrNoPath: the former means the name is unknown, the latter means the
// name exists but cannot be reached from the origin.
package route
