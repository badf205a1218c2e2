package mesh

import (
	"fmt"
	"math"
	"sort"
)

// Name returns the mesh name given to New.
func (m *Mesh) Name() string { return m.name }

// BothWays reports whether Connect stores the reverse Segment too.
func (m *Mesh) BothWays() bool { return m.bothWays }

// PointCount returns the number of Points in the arena.
func (m *Mesh) PointCount() int { return len(m.names) }

// SegmentCount returns the number of stored Segments.
// With BothWays enabled each Connect contributes two.
func (m *Mesh) SegmentCount() int { return m.segments }

// AddPoint ensures a Point with the given name exists and returns its handle.
// Adding an existing name is a no-op that returns the original handle.
// Empty names are rejected with ErrEmptyPointName.
func (m *Mesh) AddPoint(name string) (Point, error) {
	if name == "" {
		return Point{ID: NoPoint}, ErrEmptyPointName
	}
	if id, ok := m.index[name]; ok {
		return Point{ID: id, Name: name}, nil
	}
	id := PointID(len(m.names))
	m.index[name] = id
	m.names = append(m.names, name)
	m.outgoing = append(m.outgoing, nil)
	return Point{ID: id, Name: name}, nil
}

// Connect records a directed Segment of km kilometers from one named Point
// to another, creating either endpoint on first use. When the Mesh was built
// with WithBothWays, the reverse Segment is stored as well.
//
// km must be finite and >= 0 (ErrNegativeDistance / ErrNonFiniteDistance
// otherwise); shortest-path searches rely on this. Self-loops and parallel
// Segments are permitted. A rejected call leaves the Mesh untouched.
func (m *Mesh) Connect(from, to string, km float64) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: %q -> %q", ErrEmptyPointName, from, to)
	}
	if km < 0 {
		return fmt.Errorf("%w: %s -> %s (%v km)", ErrNegativeDistance, from, to, km)
	}
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return fmt.Errorf("%w: %s -> %s (%v km)", ErrNonFiniteDistance, from, to, km)
	}
	src, err := m.AddPoint(from)
	if err != nil {
		return err
	}
	dst, err := m.AddPoint(to)
	if err != nil {
		return err
	}
	m.outgoing[src.ID] = append(m.outgoing[src.ID], Segment{From: src.ID, To: dst.ID, Km: km})
	m.segments++
	if m.bothWays {
		m.outgoing[dst.ID] = append(m.outgoing[dst.ID], Segment{From: dst.ID, To: src.ID, Km: km})
		m.segments++
	}
	return nil
}

// FindPoint resolves a name to its handle.
// Unknown names return ErrPointNotFound wrapped with the name.
func (m *Mesh) FindPoint(name string) (Point, error) {
	id, ok := m.index[name]
	if !ok {
		return Point{ID: NoPoint}, fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}
	return Point{ID: id, Name: name}, nil
}

// Contains reports whether a Point with the given name exists.
func (m *Mesh) Contains(name string) bool {
	_, ok := m.index[name]
	return ok
}

// PointName returns the name stored at id, or "" when id is out of range.
func (m *Mesh) PointName(id PointID) string {
	if id < 0 || int(id) >= len(m.names) {
		return ""
	}
	return m.names[id]
}

// Outgoing returns the Segments leaving id, in insertion order.
// The returned slice is a view owned by the Mesh; callers must not modify
// it. Out-of-range ids yield nil.
func (m *Mesh) Outgoing(id PointID) []Segment {
	if id < 0 || int(id) >= len(m.outgoing) {
		return nil
	}
	return m.outgoing[id]
}

// Points returns all handles sorted by name.
func (m *Mesh) Points() []Point {
	pts := make([]Point, 0, len(m.names))
	for i, name := range m.names {
		pts = append(pts, Point{ID: PointID(i), Name: name})
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Name < pts[j].Name })
	return pts
}

// Segments returns a copy of every stored Segment, grouped by origin slot.
func (m *Mesh) Segments() []Segment {
	segs := make([]Segment, 0, m.segments)
	for _, out := range m.outgoing {
		segs = append(segs, out...)
	}
	return segs
}
