// Package mesh defines the logistics mesh model: named delivery Points and
// the directed, weighted Segments connecting them.
//
// What
//
//   - A Mesh is a named collection of Points and Segments, built once and
//     then queried read-only.
//   - Point identity is its name, unique within a Mesh. Internally every
//     Point occupies a dense index (PointID) in an arena, and Segments
//     reference their endpoints by index. This keeps lookups explicit and
//     avoids keying maps on object identity.
//   - A Segment is directed: it belongs to its origin Point and carries a
//     non-negative distance in kilometers.
//
// Construction
//
//	m := mesh.New("southeast")
//	m.Connect("A", "B", 10) // adds A and B on first use
//	m.Connect("B", "D", 15)
//
// Connect resolves or creates both endpoints, so ingesting the textual
// `<origin> <destination> <distance>` format needs no separate point pass.
// With mesh.WithBothWays(), every Connect also records the reverse Segment;
// by default a connection is one-way.
//
// Immutability contract
//
// A Mesh is mutable only through AddPoint and Connect. Once handed to a
// query (dijkstra, route) it must not be mutated for the duration of that
// query; the catalog package enforces this by handing out cloned snapshots.
// Concurrent readers need no locks, matching the query model: reads never
// mutate.
//
// Invariants
//
//   - Every Segment endpoint exists in the owning Mesh (enforced by
//     construction, re-checked by Validate).
//   - Segment distances are always finite and never negative (Connect
//     rejects violations with ErrNegativeDistance / ErrNonFiniteDistance,
//     so shortest-path searches can assume Dijkstra-safe weights).
//   - Parallel Segments and self-loops are permitted; searches relax every
//     outgoing Segment, so parallels resolve to the cheapest and self-loops
//     never shorten a route.
//
// Errors (sentinel)
//
//   - ErrEmptyPointName    — AddPoint/Connect given an empty name.
//   - ErrPointNotFound     — FindPoint miss.
//   - ErrNegativeDistance  — Connect given km < 0.
//   - ErrNonFiniteDistance — Connect given NaN or an infinity.
//   - ErrSegmentRange      — Validate found an endpoint index out of range.
//   - ErrIndexMismatch     — Validate found the name index out of sync.
//
// Complexity
//
//   - AddPoint, Connect, FindPoint: O(1) amortized.
//   - Points: O(V log V) (sorted copy). Outgoing: O(1) (slice view).
//   - Clone: O(V + E). Validate: O(V + E).
package mesh
