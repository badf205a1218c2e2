// Package meshroute computes cheapest delivery routes over weighted meshes
// of named points — build a mesh, run one search, turn kilometers into a
// fuel bill.
//
// 🚚 What is meshroute?
//
//	A small, deterministic routing toolkit that brings together:
//		• Mesh primitives: named points & weighted one-way segments in an arena layout
//		• Shortest routes: Dijkstra with a deterministic name tie-break
//		• Quotes: route + distance + fuel cost in a single call
//		• Text format: parse & write plain "from to km" mesh files
//		• Catalog: named snapshots, YAML manifests, prometheus instrumentation
//		• Generators: seeded corridor / ring / grid / random meshes for tests
//
// ✨ Why choose meshroute?
//
//   - Predictable – identical inputs always quote the identical route
//   - Honest errors – one sentinel per failure kind, errors.Is-friendly
//   - Bounded – every query is synchronous, lock-free and allocation-light
//   - Practical – ships a CLI (cmd/meshroute) and runnable examples
//
// Everything is organized under focused subpackages:
//
//	mesh/     — Point, Segment, Mesh: construction, cloning, validation
//	dijkstra/ — single-source cheapest distances + predecessor tree
//	route/    — BuildPath, Cost and the Cheapest quote orchestration
//	meshtext/ — the textual mesh format (Parse / ParseFile / Write)
//	catalog/  — named mesh snapshots, manifests, instrumented queries
//	metrics/  — prometheus collectors behind a private registry
//	meshgen/  — deterministic mesh generators for tests & benchmarks
//
// Quick ASCII example:
//
//	(A)──10─▶(B)──15─▶(D)
//	  \                ▲
//	  20─▶(C)──30──────┘
//
//	the cheapest A→D run is A,B,D: 25 km, and at 10 km/l with fuel at
//	2.50 per liter it costs 6.25.
//
//	go get github.com/verlaque/meshroute
package meshroute
