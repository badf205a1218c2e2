// Package metrics collects Prometheus instrumentation for mesh queries and
// catalog activity.
//
// The package registers against its own prometheus.Registry rather than the
// global default, so embedding applications choose whether and where to
// expose it (see Gatherer). Nothing here opens an HTTP endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics emitted by the routing engine.
type Registry struct {
	registry *prometheus.Registry

	// Query metrics, labelled by mesh name and outcome status.
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Catalog metrics.
	MeshReloads  *prometheus.CounterVec
	MeshPoints   *prometheus.GaugeVec
	MeshSegments *prometheus.GaugeVec
}

// NewRegistry creates a Registry with all metrics registered on a fresh,
// private prometheus.Registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initQueryMetrics()
	r.initMeshMetrics()

	return r
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshroute_queries_total",
			Help: "Total number of route queries answered",
		},
		[]string{"mesh", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meshroute_query_duration_seconds",
			Help:    "Route query duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"mesh"},
	)
}

func (r *Registry) initMeshMetrics() {
	r.MeshReloads = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshroute_mesh_reloads_total",
			Help: "Times a mesh was replaced in the catalog",
		},
		[]string{"mesh"},
	)

	r.MeshPoints = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "meshroute_mesh_points",
			Help: "Points in the currently registered mesh",
		},
		[]string{"mesh"},
	)

	r.MeshSegments = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "meshroute_mesh_segments",
			Help: "Segments in the currently registered mesh",
		},
		[]string{"mesh"},
	)
}

// RecordQuery records one answered query with its outcome and duration.
func (r *Registry) RecordQuery(mesh, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(mesh, status).Inc()
	r.QueryDuration.WithLabelValues(mesh).Observe(duration.Seconds())
}

// RecordReload records one mesh replacement.
func (r *Registry) RecordReload(mesh string) {
	r.MeshReloads.WithLabelValues(mesh).Inc()
}

// SetMeshSize records the current shape of a registered mesh.
func (r *Registry) SetMeshSize(mesh string, points, segments int) {
	r.MeshPoints.WithLabelValues(mesh).Set(float64(points))
	r.MeshSegments.WithLabelValues(mesh).Set(float64(segments))
}

// ForgetMesh drops the per-mesh series after a catalog removal.
func (r *Registry) ForgetMesh(mesh string) {
	r.MeshPoints.DeleteLabelValues(mesh)
	r.MeshSegments.DeleteLabelValues(mesh)
}

// Gatherer exposes the private registry for embedders that want to serve or
// push these metrics.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
