// Package dijkstra implements the single-origin shortest-route search on a
// delivery mesh.
//
// ShortestFrom computes the minimum kilometer distance from one origin Point
// to all other reachable Points of a mesh with non-negative Segment
// distances. It settles Points in order of increasing distance using a
// min-heap priority queue, relaxing outgoing Segments and updating
// distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each Point is settled at most once: V extractions from the heap.
//   - Each Segment relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor arenas.
//   - O(E) worst-case for entries in the heap under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all Segments (O(E)) to detect negative
//     distances and fail fast. Connect rejects them at construction, so a
//     hit means the arena was corrupted after the fact.
//   - We stop exploring once the minimum distance in the heap exceeds
//     MaxDistanceKm.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries.
//   - Heap ties on distance are broken by point name, so equally distant
//     Points settle in lexicographic order. Combined with the strict "<"
//     relaxation this makes results independent of Segment insertion order:
//     among equal-cost routes, the one through lexicographically smaller
//     names wins.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/verlaque/meshroute/mesh"
)

// ShortestFrom computes shortest kilometer distances from origin to all
// other Points in the mesh m, returning them as a route Tree. It accepts
// functional options to customize behavior (MaxDistanceKm).
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMesh).
//  2. origin must resolve inside m: its ID and Name must match the arena
//     (ErrOriginNotFound). Handles from FindPoint or AddPoint satisfy this.
//  3. No Segment in m may carry a negative distance (ErrNegativeSegment).
//
// The mesh must not be mutated while ShortestFrom runs or while the
// returned Tree is in use.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestFrom(m *mesh.Mesh, origin mesh.Point, opts ...Option) (*Tree, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate mesh is non-nil.
	if m == nil {
		return nil, ErrNilMesh
	}

	// 3) Validate the origin handle against the arena. A zero-value Point
	//    has an empty Name and never resolves (empty names cannot be added).
	if origin.Name == "" || m.PointName(origin.ID) != origin.Name {
		return nil, fmt.Errorf("%w: %q (id %d)", ErrOriginNotFound, origin.Name, origin.ID)
	}

	// 4) Pre-scan all Segments to detect negative distances. Fail fast with
	//    ErrNegativeSegment: Connect rejects them, so one here means the
	//    arena was corrupted behind the construction API.
	V := m.PointCount()
	for id := mesh.PointID(0); int(id) < V; id++ {
		for _, seg := range m.Outgoing(id) {
			if seg.Km < 0 {
				return nil, fmt.Errorf("%w: %s -> %s (%v km)",
					ErrNegativeSegment, m.PointName(seg.From), m.PointName(seg.To), seg.Km)
			}
		}
	}

	// 5) Prepare the per-slot state (V = number of Points).
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make([]float64, V),
		prev:    make([]mesh.PointID, V),
		visited: make([]bool, V),
		pq:      make(pointPQ, 0, V),
	}

	// 6) Initialize state and run the main loop.
	r.init(origin)
	r.process()

	return &Tree{origin: origin, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single ShortestFrom execution.
type runner struct {
	m       *mesh.Mesh     // The input mesh; read-only during the search.
	options Options        // Configuration options (distance cap).
	dist    []float64      // Arena slot -> current best distance from origin.
	prev    []mesh.PointID // Arena slot -> predecessor on the cheapest route.
	visited []bool         // Tracks whether a slot's distance is finalized.
	pq      pointPQ        // Min-heap of *pointItem for the lazy priority queue.
}

// init sets up initial distances and predecessors and pushes origin=0 onto the heap.
func (r *runner) init(origin mesh.Point) {
	// 1) dist[v] = +Inf and prev[v] = NoPoint for every slot.
	unreachable := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = unreachable
		r.prev[i] = mesh.NoPoint
	}

	// 2) Distance to the origin is zero.
	r.dist[origin.ID] = 0

	// 3) Seed the priority queue with the origin.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pointItem{id: origin.ID, name: origin.Name, km: 0})
}

// process is the core loop. It repeatedly extracts the Point with the
// minimum distance from the origin and relaxes its outgoing Segments.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable Points settled).
//   - The minimum distance in the heap exceeds MaxDistanceKm (nothing
//     nearer is left to explore).
func (r *runner) process() {
	cfg := r.options
	var u mesh.PointID
	var d float64
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*pointItem)
		u = item.id
		d = item.km

		// 2) Skip stale heap entries for already settled Points.
		if r.visited[u] {
			continue
		}

		// 3) Everything still in the heap is at least this far away; once d
		//    exceeds the cap we are done. u stays unsettled.
		if d > cfg.MaxDistanceKm {
			break
		}

		// 4) Mark u settled. Its shortest distance d is now final.
		r.visited[u] = true

		// 5) Relax all Segments leaving u.
		r.relax(u)
	}
}

// relax examines each Segment leaving slot u and attempts to improve the
// distance to its target. If a strictly shorter route to v is found
// (newDist < dist[v]), it updates dist[v] and prev[v] and pushes a new heap
// entry.
//
// Assumes r.dist[u] is finalized before the call.
func (r *runner) relax(u mesh.PointID) {
	var v mesh.PointID
	var newDist float64
	for _, seg := range r.m.Outgoing(u) {
		v = seg.To

		// Candidate distance origin -> ... -> u -> v.
		newDist = r.dist[u] + seg.Km

		// Routes beyond the cap are not explored.
		if newDist > r.options.MaxDistanceKm {
			continue
		}

		// Strictly better only: "<" keeps the first settled offerer as the
		// predecessor on equal-cost routes and avoids duplicate pushes.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: push the improved entry, stale ones are
		// ignored when popped (visited check in process).
		heap.Push(&r.pq, &pointItem{id: v, name: r.m.PointName(v), km: newDist})
	}
}

// pointItem represents a Point and its current distance from the origin.
// It is stored in the priority queue to order Points by increasing distance.
type pointItem struct {
	id   mesh.PointID // arena slot
	name string       // point name, the tie-break key
	km   float64      // distance from origin
}

// pointPQ is a min-heap (priority queue) of *pointItem, ordered by km
// ascending with ties broken by name ascending. We use the "lazy
// decrease-key" approach: when a shorter distance to an existing Point v is
// found, a new *pointItem is pushed. The outdated entry remains but is
// ignored when popped (checked via visited[v]).
type pointPQ []*pointItem

// Len returns the number of items in the heap.
func (pq pointPQ) Len() int { return len(pq) }

// Less orders by distance, then by name so equally distant Points pop in
// lexicographic order.
func (pq pointPQ) Less(i, j int) bool {
	if pq[i].km != pq[j].km {
		return pq[i].km < pq[j].km
	}
	return pq[i].name < pq[j].name
}

// Swap swaps two elements in the heap.
func (pq pointPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *pointItem.
func (pq *pointPQ) Push(x interface{}) { *pq = append(*pq, x.(*pointItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *pointItem.
func (pq *pointPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
