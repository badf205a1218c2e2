// Package meshtext_test exercises the textual mesh format: the happy path,
// every rejection class with its line attribution, and the Write round trip.
package meshtext_test

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verlaque/meshroute/mesh"
	"github.com/verlaque/meshroute/meshtext"
	"github.com/verlaque/meshroute/route"
)

const southeast = `# southeast region, distances in km
A B 10
B D 15
A C 20

C D 30
B E 50   # long detour
D E 30
`

func TestParse_Southeast(t *testing.T) {
	m, err := meshtext.Parse(strings.NewReader(southeast))
	require.NoError(t, err)

	assert.Equal(t, "mesh", m.Name())
	assert.Equal(t, 5, m.PointCount())
	assert.Equal(t, 6, m.SegmentCount())

	// End to end through the parsed mesh.
	res, err := route.Cheapest(m, route.Params{
		Origin:             "A",
		Destination:        "D",
		AutonomyKmPerLiter: 10,
		FuelPricePerLiter:  2.50,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Route)
	assert.Equal(t, 6.25, res.Cost)
}

func TestParse_Options(t *testing.T) {
	m, err := meshtext.ParseString("A B 12\n",
		meshtext.WithMeshName("coastal"),
		meshtext.WithBothWays(),
	)
	require.NoError(t, err)

	assert.Equal(t, "coastal", m.Name())
	assert.Equal(t, 2, m.SegmentCount())

	b, err := m.FindPoint("B")
	require.NoError(t, err)
	require.Len(t, m.Outgoing(b.ID), 1)
}

func TestParse_WhitespaceAndTabs(t *testing.T) {
	m, err := meshtext.ParseString("  A\t B \t 10 \n\n\t\nB   C\t7.5\n")
	require.NoError(t, err)
	assert.Equal(t, 2, m.SegmentCount())

	b, err := m.FindPoint("B")
	require.NoError(t, err)
	assert.Equal(t, 7.5, m.Outgoing(b.ID)[0].Km)
}

func TestParse_EmptyInputIsEmptyMesh(t *testing.T) {
	m, err := meshtext.ParseString("# only comments\n\n")
	require.NoError(t, err)
	assert.Zero(t, m.PointCount())
	assert.Zero(t, m.SegmentCount())
}

func TestParse_FieldCount(t *testing.T) {
	_, err := meshtext.ParseString("A B 10\nA B\n")
	require.ErrorIs(t, err, meshtext.ErrInvalidMesh)

	var pe *meshtext.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "A B", pe.Text)
	assert.ErrorContains(t, err, "expected 3 fields, got 2")
}

func TestParse_BadNumber(t *testing.T) {
	_, err := meshtext.ParseString("A B ten\n")
	require.ErrorIs(t, err, meshtext.ErrInvalidMesh)
	require.ErrorIs(t, err, strconv.ErrSyntax)

	var pe *meshtext.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
}

func TestParse_NegativeDistance(t *testing.T) {
	_, err := meshtext.ParseString("A B -5\n")
	require.ErrorIs(t, err, meshtext.ErrInvalidMesh)
	require.ErrorContains(t, err, "finite non-negative")
}

func TestParse_NonFiniteDistance(t *testing.T) {
	for _, field := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		_, err := meshtext.ParseString("A B " + field + "\n")
		require.ErrorIsf(t, err, meshtext.ErrInvalidMesh, "distance %q", field)
	}
}

func TestParse_LineAttribution(t *testing.T) {
	// The first malformed line wins; comment and blank lines still count.
	input := "A B 10\n# fine\n\nB C 5\nC D oops\n"
	_, err := meshtext.ParseString(input)

	var pe *meshtext.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Line)
	assert.Equal(t, "C D oops", pe.Text)
}

func TestParseFile_NamesAfterFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "southeast.mesh")
	require.NoError(t, os.WriteFile(path, []byte(southeast), 0o644))

	m, err := meshtext.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "southeast", m.Name())
	assert.Equal(t, 6, m.SegmentCount())

	// Explicit option beats the file-derived default.
	m, err = meshtext.ParseFile(path, meshtext.WithMeshName("override"))
	require.NoError(t, err)
	assert.Equal(t, "override", m.Name())
}

func TestParseFile_Missing(t *testing.T) {
	_, err := meshtext.ParseFile(filepath.Join(t.TempDir(), "nope.mesh"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, meshtext.ErrInvalidMesh)
}

// segmentSet renders a mesh's segments as sorted "from->to:km" strings for
// order-insensitive comparison.
func segmentSet(t *testing.T, m *mesh.Mesh) []string {
	t.Helper()
	var out []string
	for _, p := range m.Points() {
		for _, seg := range m.Outgoing(p.ID) {
			out = append(out, p.Name+"->"+m.PointName(seg.To)+":"+
				strconv.FormatFloat(seg.Km, 'f', -1, 64))
		}
	}
	sort.Strings(out)
	return out
}

func TestWrite_RoundTrip(t *testing.T) {
	orig, err := meshtext.ParseString(southeast, meshtext.WithMeshName("southeast"))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, meshtext.Write(&buf, orig))

	back, err := meshtext.ParseString(buf.String(), meshtext.WithMeshName("southeast"))
	require.NoError(t, err)

	assert.Equal(t, segmentSet(t, orig), segmentSet(t, back))
	assert.Equal(t, orig.PointCount(), back.PointCount())
}

func TestWrite_FractionalKm(t *testing.T) {
	m := mesh.New("m")
	require.NoError(t, m.Connect("A", "B", 7.25))

	var buf strings.Builder
	require.NoError(t, meshtext.Write(&buf, m))
	assert.Equal(t, "A B 7.25\n", buf.String())
}

func TestWrite_NilMesh(t *testing.T) {
	var buf strings.Builder
	err := meshtext.Write(&buf, nil)
	require.ErrorIs(t, err, meshtext.ErrNilMesh)
}

func TestParseError_Message(t *testing.T) {
	err := &meshtext.ParseError{Line: 3, Text: "A B", Err: errors.New("boom")}
	assert.Equal(t, `meshtext: line 3: boom (in "A B")`, err.Error())
}
