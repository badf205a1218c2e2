package mesh

import (
	"fmt"
	"math"
)

// Clone returns a deep copy of the Mesh. PointIDs carry over unchanged, so
// handles resolved against the original remain valid against the clone.
// Mutating either side never affects the other.
//
// Complexity: O(V + E).
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		name:     m.name,
		bothWays: m.bothWays,
		index:    make(map[string]PointID, len(m.index)),
		names:    make([]string, len(m.names)),
		outgoing: make([][]Segment, len(m.outgoing)),
		segments: m.segments,
	}
	for name, id := range m.index {
		c.index[name] = id
	}
	copy(c.names, m.names)
	for i, out := range m.outgoing {
		if len(out) == 0 {
			continue
		}
		dup := make([]Segment, len(out))
		copy(dup, out)
		c.outgoing[i] = dup
	}
	return c
}

// Validate re-checks the arena invariants:
//
//  1. names, outgoing and index have matching sizes.
//  2. every name maps back to its own slot.
//  3. every Segment starts at its owning slot and ends inside the arena.
//  4. no Segment carries a negative or non-finite distance.
//
// Construction maintains all four; Validate exists for callers that receive
// meshes across trust boundaries (catalog manifests, decoded payloads).
//
// Complexity: O(V + E).
func (m *Mesh) Validate() error {
	if len(m.names) != len(m.outgoing) || len(m.names) != len(m.index) {
		return fmt.Errorf("%w: %d names, %d adjacency rows, %d index entries",
			ErrIndexMismatch, len(m.names), len(m.outgoing), len(m.index))
	}
	for slot, name := range m.names {
		id, ok := m.index[name]
		if !ok || id != PointID(slot) {
			return fmt.Errorf("%w: %q at slot %d", ErrIndexMismatch, name, slot)
		}
	}
	count := 0
	for slot, out := range m.outgoing {
		for _, seg := range out {
			if seg.From != PointID(slot) {
				return fmt.Errorf("%w: segment from %d stored under %d", ErrSegmentRange, seg.From, slot)
			}
			if seg.To < 0 || int(seg.To) >= len(m.names) {
				return fmt.Errorf("%w: segment %d -> %d", ErrSegmentRange, seg.From, seg.To)
			}
			if seg.Km < 0 {
				return fmt.Errorf("%w: %s -> %s (%v km)",
					ErrNegativeDistance, m.names[seg.From], m.names[seg.To], seg.Km)
			}
			if math.IsNaN(seg.Km) || math.IsInf(seg.Km, 0) {
				return fmt.Errorf("%w: %s -> %s (%v km)",
					ErrNonFiniteDistance, m.names[seg.From], m.names[seg.To], seg.Km)
			}
			count++
		}
	}
	if count != m.segments {
		return fmt.Errorf("%w: %d segments stored, %d counted", ErrIndexMismatch, m.segments, count)
	}
	return nil
}
