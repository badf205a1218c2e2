// Package catalog keeps a registry of named meshes and answers
// cheapest-route queries against any of them. See doc.go for the full
// contract.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/verlaque/meshroute/mesh"
	"github.com/verlaque/meshroute/route"
)

// Register adds m under its own name and returns the stored snapshot.
// The mesh is cloned on the way in. Registering a name twice fails with
// ErrMeshExists; use Replace to overwrite.
func (c *Catalog) Register(m *mesh.Mesh) (*Snapshot, error) {
	snap, err := snapshotOf(m)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	name := snap.Mesh.Name()
	if _, ok := c.meshes[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrMeshExists, name)
	}
	c.meshes[name] = snap
	c.observeSize(snap)

	return snap, nil
}

// Replace stores m under its own name, overwriting any previous snapshot.
// Overwriting an existing mesh counts as a reload.
func (c *Catalog) Replace(m *mesh.Mesh) (*Snapshot, error) {
	snap, err := snapshotOf(m)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	name := snap.Mesh.Name()
	_, existed := c.meshes[name]
	c.meshes[name] = snap
	c.observeSize(snap)
	if existed && c.metrics != nil {
		c.metrics.RecordReload(name)
	}

	return snap, nil
}

// Get returns the snapshot registered under name, or ErrMeshNotFound.
func (c *Catalog) Get(name string) (*Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.meshes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMeshNotFound, name)
	}

	return snap, nil
}

// Remove drops the snapshot registered under name and forgets its gauges.
func (c *Catalog) Remove(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.meshes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrMeshNotFound, name)
	}
	delete(c.meshes, name)
	if c.metrics != nil {
		c.metrics.ForgetMesh(name)
	}

	return nil
}

// Names lists the registered mesh names in lexicographic order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.meshes))
	for name := range c.meshes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len reports how many meshes are registered.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.meshes)
}

// Query answers the quote question p against the mesh registered under
// meshName. The context is consulted before the search starts; a search
// already in flight is not interrupted. Every outcome except a dead
// context is folded into the metrics registry when one is wired.
func (c *Catalog) Query(ctx context.Context, meshName string, p route.Params) (*route.RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("catalog: query %q: %w", meshName, err)
	}

	start := time.Now()

	// 1. Resolve the snapshot; the search itself runs outside the lock.
	snap, err := c.Get(meshName)
	if err != nil {
		c.observeQuery(meshName, err, start)

		return nil, err
	}

	// 2. Quote against the frozen mesh.
	res, err := route.Cheapest(snap.Mesh, p)
	c.observeQuery(meshName, err, start)
	if err != nil {
		return nil, fmt.Errorf("catalog: query %q: %w", meshName, err)
	}

	return res, nil
}

// snapshotOf validates m and freezes it into a new snapshot.
func snapshotOf(m *mesh.Mesh) (*Snapshot, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if m.Name() == "" {
		return nil, ErrEmptyMeshName
	}

	return &Snapshot{
		Mesh:         m.Clone(),
		Revision:     uuid.New(),
		RegisteredAt: time.Now().UTC(),
	}, nil
}

// observeSize publishes a snapshot's point and segment gauges.
func (c *Catalog) observeSize(snap *Snapshot) {
	if c.metrics == nil {
		return
	}
	c.metrics.SetMeshSize(snap.Mesh.Name(), snap.Mesh.PointCount(), snap.Mesh.SegmentCount())
}

// observeQuery folds one query outcome into the metrics registry.
func (c *Catalog) observeQuery(meshName string, err error, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordQuery(meshName, queryStatus(err), time.Since(start))
}

// queryStatus maps a query error to its counter label.
func queryStatus(err error) string {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, ErrMeshNotFound):
		return statusMeshNotFound
	case errors.Is(err, route.ErrInvalidParameter):
		return statusInvalidParameter
	case errors.Is(err, mesh.ErrPointNotFound):
		return statusPointNotFound
	case errors.Is(err, route.ErrNoPath):
		return statusNoPath
	default:
		return statusError
	}
}
