// Package meshtext reads and writes the textual mesh description format:
//
//	# southeast region, one segment per line
//	A B 10
//	B D 15
//
// Each non-empty line is `<origin> <destination> <distanceKm>`, separated
// by any run of spaces or tabs. Everything from '#' to the end of the line
// is a comment; blank lines are skipped. Distances accept any non-negative
// finite float syntax strconv understands.
//
// Parsing stops at the first malformed line and returns a *ParseError
// carrying the line number; errors.Is(err, ErrInvalidMesh) matches every
// parser rejection.
package meshtext

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/verlaque/meshroute/mesh"
)

// segmentFields is the exact token count of a segment line.
const segmentFields = 3

// Parse reads a mesh description from r.
//
// Complexity: O(L) over input lines.
func Parse(r io.Reader, opts ...Option) (*mesh.Mesh, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return parse(r, o)
}

// ParseString parses an in-memory mesh description.
func ParseString(s string, opts ...Option) (*mesh.Mesh, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile parses the mesh description at path. Unless overridden with
// WithMeshName, the mesh is named after the file base without extension
// ("meshes/southeast.mesh" -> "southeast").
func ParseFile(path string, opts ...Option) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshtext: open: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	withDefault := append([]Option{WithMeshName(name)}, opts...)

	return Parse(f, withDefault...)
}

func parse(r io.Reader, o Options) (*mesh.Mesh, error) {
	var m *mesh.Mesh
	if o.BothWays {
		m = mesh.New(o.MeshName, mesh.WithBothWays())
	} else {
		m = mesh.New(o.MeshName)
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		// Strip comments, then surrounding whitespace.
		line := raw
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != segmentFields {
			return nil, &ParseError{
				Line: lineNo,
				Text: raw,
				Err:  fmt.Errorf("expected %d fields, got %d", segmentFields, len(fields)),
			}
		}

		km, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, &ParseError{
				Line: lineNo,
				Text: raw,
				Err:  fmt.Errorf("bad distance %q: %w", fields[2], err),
			}
		}
		// ParseFloat accepts "NaN" and "Inf"; the mesh does not.
		if km < 0 || math.IsNaN(km) || math.IsInf(km, 0) {
			return nil, &ParseError{
				Line: lineNo,
				Text: raw,
				Err:  fmt.Errorf("distance must be a finite non-negative number, got %q", fields[2]),
			}
		}

		if err := m.Connect(fields[0], fields[1], km); err != nil {
			return nil, &ParseError{Line: lineNo, Text: raw, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshtext: read: %w", err)
	}

	return m, nil
}

// Write serializes the stored segments of m in the same textual format,
// one line per segment, grouped by origin in name order. A mesh built with
// WithBothWays dumps both stored directions.
//
// The output parses back (with the default one-way options) into a mesh
// with the identical segment set.
func Write(w io.Writer, m *mesh.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}

	pts := m.Points() // already sorted by name
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		for _, seg := range m.Outgoing(p.ID) {
			if _, err := fmt.Fprintf(bw, "%s %s %s\n",
				p.Name, m.PointName(seg.To), strconv.FormatFloat(seg.Km, 'f', -1, 64)); err != nil {
				return fmt.Errorf("meshtext: write: %w", err)
			}
		}
	}

	return bw.Flush()
}
