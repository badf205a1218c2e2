// Package dijkstra provides the shortest-route search used by every
// delivery-cost computation: Dijkstra's algorithm over a mesh.Mesh with
// non-negative Segment distances.
//
// Overview:
//
//   - ShortestFrom computes the minimum kilometer distance from a single
//     origin Point to all reachable Points in O((V + E) log V) time, where
//     V = |points| and E = |segments|.
//   - It relies on a min-heap (priority queue) to always settle the
//     next-closest Point.
//   - The result is a Tree: per-Point distances plus the predecessor links
//     needed to rebuild each cheapest route (see package route).
//
// When to use:
//
//   - Whenever you need exact cheapest routes on a static delivery mesh:
//     one search from the origin answers queries to every destination.
//   - As the engine behind route.Cheapest; use ShortestFrom directly when
//     you want to fan one origin out to many destinations without
//     recomputing.
//
// Determinism:
//
//   - Relaxation only accepts strictly shorter routes ("<", never "<=").
//   - Heap ties on distance are broken by point name, so equally distant
//     Points settle in lexicographic order.
//   - Together these make the Tree a pure function of the mesh contents:
//     rebuilding the same mesh in a different Connect order yields the
//     same distances and the same routes.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each Point is extracted at most once from the priority queue.
//   - Each Segment relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor arenas.
//   - O(E) worst-case entries in the heap under the "lazy decrease-key" strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilMesh:
//     Returned if you pass a nil *mesh.Mesh to ShortestFrom.
//   - ErrOriginNotFound:
//     Returned if the origin handle does not resolve inside the mesh.
//   - ErrNegativeSegment:
//     Returned if the upfront scan finds a Segment with a negative
//     distance. mesh.Connect rejects those at construction, so this only
//     fires on a mesh corrupted behind its API.
//   - ErrBadMaxDistance:
//     Raised (via panic) if you set MaxDistanceKm to a negative or NaN value.
//
// Thread safety:
//
//   - ShortestFrom only reads the mesh; any number of searches may run
//     concurrently over the same mesh as long as nobody mutates it.
//   - A returned Tree is immutable and safe to share.
//
// See also:
//
//   - mesh.Mesh: point and segment construction.
//   - route.Cheapest: origin-to-destination route plus monetary cost on top
//     of this search.
package dijkstra
