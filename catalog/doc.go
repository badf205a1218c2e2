// Package catalog keeps named meshes behind a concurrency-safe registry
// and answers cheapest-route queries against any of them.
//
// What this package provides:
//
//   - Register / Replace / Get / Remove: snapshot lifecycle keyed by mesh
//     name, with uuid revisions and UTC registration stamps.
//   - Query: context check, snapshot lookup and route.Cheapest in one
//     call, instrumented per mesh and per outcome.
//   - LoadManifest: bulk loading from a YAML manifest of meshtext files.
//   - Names / Len: registry introspection, sorted and stable.
//
// Snapshots:
//
// Registration clones the offered mesh, so the caller may keep editing
// its own copy without disturbing the catalog. The snapshot's mesh is
// shared with every reader and must be treated as read-only, matching the
// mesh package's build-then-freeze contract. Every registration carries a
// fresh uuid.UUID revision, so two loads of the same name are
// distinguishable in logs and audits.
//
// Concurrency:
//
// All methods are safe for concurrent use. Reads (Get, Names, Len, Query)
// share an RLock; writers hold the exclusive lock only while swapping
// snapshots in or out, never while parsing files or running a search.
// Query resolves its snapshot under the read lock and releases it before
// the search starts, so long searches do not block reloads.
//
// Metrics:
//
// Wire a metrics.Registry through WithMetrics to count queries by status
// (ok, mesh_not_found, point_not_found, no_path, invalid_parameter,
// error), observe per-mesh query latency, count reloads and track mesh
// sizes. Without it the catalog runs silent.
//
// Errors:
//
//	ErrNilMesh       - nil mesh offered for registration
//	ErrEmptyMeshName - registration key would be empty
//	ErrMeshExists    - Register refuses to overwrite (Replace does not)
//	ErrMeshNotFound  - Get, Remove or Query against an unknown name
//
// Manifest failures wrap the underlying cause (I/O, YAML, meshtext parse
// errors) and name the offending entry; the registry is only touched once
// the whole manifest has parsed.
//
// See also: package route for the quote pipeline itself and package
// meshtext for the file format LoadManifest consumes.
package catalog
