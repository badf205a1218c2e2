package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.QueriesTotal == nil {
		t.Error("QueriesTotal not initialized")
	}
	if r.QueryDuration == nil {
		t.Error("QueryDuration not initialized")
	}
	if r.MeshReloads == nil {
		t.Error("MeshReloads not initialized")
	}
	if r.MeshPoints == nil {
		t.Error("MeshPoints not initialized")
	}
	if r.MeshSegments == nil {
		t.Error("MeshSegments not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestRecordQuery(t *testing.T) {
	r := NewRegistry()

	r.RecordQuery("southeast", "ok", 2*time.Millisecond)
	r.RecordQuery("southeast", "ok", 4*time.Millisecond)
	r.RecordQuery("southeast", "no_path", 1*time.Millisecond)

	okCounter, err := r.QueriesTotal.GetMetricWithLabelValues("southeast", "ok")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := okCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("ok counter = %v, want 2", metric.Counter.GetValue())
	}

	noPathCounter, err := r.QueriesTotal.GetMetricWithLabelValues("southeast", "no_path")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if err := noPathCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("no_path counter = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRecordReload(t *testing.T) {
	r := NewRegistry()

	r.RecordReload("southeast")
	r.RecordReload("southeast")

	child, err := r.MeshReloads.GetMetricWithLabelValues("southeast")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := child.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("reload counter = %v, want 2", metric.Counter.GetValue())
	}
}

func TestSetMeshSize(t *testing.T) {
	r := NewRegistry()

	r.SetMeshSize("southeast", 5, 6)

	child, err := r.MeshPoints.GetMetricWithLabelValues("southeast")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := child.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 5 {
		t.Errorf("points gauge = %v, want 5", metric.Gauge.GetValue())
	}

	child, err = r.MeshSegments.GetMetricWithLabelValues("southeast")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if err := child.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 6 {
		t.Errorf("segments gauge = %v, want 6", metric.Gauge.GetValue())
	}
}

func TestGatherer_SeesAllFamilies(t *testing.T) {
	r := NewRegistry()
	r.RecordQuery("southeast", "ok", time.Millisecond)
	r.RecordReload("southeast")
	r.SetMeshSize("southeast", 5, 6)

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	want := map[string]bool{
		"meshroute_queries_total":          false,
		"meshroute_query_duration_seconds": false,
		"meshroute_mesh_reloads_total":     false,
		"meshroute_mesh_points":            false,
		"meshroute_mesh_segments":          false,
	}
	for _, fam := range families {
		if _, ok := want[fam.GetName()]; ok {
			want[fam.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("metric family %s not gathered", name)
		}
	}
}

func TestForgetMesh(t *testing.T) {
	r := NewRegistry()
	r.SetMeshSize("southeast", 5, 6)
	r.ForgetMesh("southeast")

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() == "meshroute_mesh_points" && len(fam.GetMetric()) != 0 {
			t.Errorf("mesh_points still has %d series after ForgetMesh", len(fam.GetMetric()))
		}
	}
}
