// Package catalog keeps a registry of named meshes and answers
// cheapest-route queries against any of them. See doc.go for the full
// contract.
package catalog

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verlaque/meshroute/mesh"
	"github.com/verlaque/meshroute/metrics"
)

// Sentinel errors returned by catalog operations.
var (
	// ErrNilMesh rejects a nil mesh offered for registration.
	ErrNilMesh = errors.New("catalog: mesh is nil")

	// ErrEmptyMeshName rejects a mesh whose name is the empty string;
	// the name is the registry key.
	ErrEmptyMeshName = errors.New("catalog: mesh name is empty")

	// ErrMeshExists is returned by Register when the name is already
	// taken. Replace overwrites instead.
	ErrMeshExists = errors.New("catalog: mesh already registered")

	// ErrMeshNotFound is returned when no mesh answers to the given name.
	ErrMeshNotFound = errors.New("catalog: mesh not found")
)

// Query status labels recorded on the queries counter.
const (
	statusOK               = "ok"
	statusMeshNotFound     = "mesh_not_found"
	statusPointNotFound    = "point_not_found"
	statusNoPath           = "no_path"
	statusInvalidParameter = "invalid_parameter"
	statusError            = "error"
)

// Snapshot is one registered mesh together with its registration metadata.
// The mesh inside is shared with every reader and must be treated as
// read-only; Register and Replace clone on the way in, so later edits by
// the registrant never reach a snapshot.
type Snapshot struct {
	// Mesh is the frozen mesh this snapshot serves.
	Mesh *mesh.Mesh

	// Revision identifies this registration. Replace mints a fresh one,
	// so two loads of the same name are distinguishable.
	Revision uuid.UUID

	// RegisteredAt is the UTC instant the snapshot was taken.
	RegisteredAt time.Time
}

// Options configures a Catalog.
type Options struct {
	// Metrics receives query and registry instrumentation. Nil leaves the
	// catalog uninstrumented.
	Metrics *metrics.Registry
}

// Option mutates Options.
type Option func(*Options)

// WithMetrics wires a metrics registry into the catalog.
// Panics if reg is nil.
func WithMetrics(reg *metrics.Registry) Option {
	return func(o *Options) {
		if reg == nil {
			panic("catalog: WithMetrics: registry must not be nil")
		}
		o.Metrics = reg
	}
}

// DefaultOptions returns the baseline configuration: no metrics.
func DefaultOptions() Options { return Options{} }

// Catalog is a concurrency-safe registry of named meshes.
// The zero value is not usable; construct with New.
type Catalog struct {
	mu      sync.RWMutex
	meshes  map[string]*Snapshot
	metrics *metrics.Registry
}

// New builds an empty catalog.
func New(opts ...Option) *Catalog {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Catalog{
		meshes:  make(map[string]*Snapshot),
		metrics: o.Metrics,
	}
}
