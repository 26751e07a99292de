package geom2d

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs segment rings. This is not a
// full (or even correct) svg parser. It parses the SVG, finds whatever the
// first polygon is, and converts its outline into closed-ring segments.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixtureEdges(t *testing.T, name string) []Segment {
	t.Helper()

	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "failed to parse fixture %q", name)

	polygons := rootEl.FindAll("polygon")
	require.Len(t, polygons, 1, "fixture %q must contain exactly one polygon", name)

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		require.Len(t, coords, 2, "invalid point string %q", pointString)
		x, err := strconv.ParseFloat(coords[0], 64)
		require.NoError(t, err, "invalid x value %q", coords[0])
		y, err := strconv.ParseFloat(coords[1], 64)
		require.NoError(t, err, "invalid y value %q", coords[1])
		points = append(points, Point{x, y})
	}
	require.GreaterOrEqual(t, len(points), 3, "fixture %q is not a polygon", name)

	edges := make([]Segment, len(points))
	for i, p := range points {
		next := points[(i+1)%len(points)]
		edges[i] = Segment{p, next}
	}
	return edges
}

// interiorIntersections applies the segment primitive pairwise, the way a
// sweep preprocessor validates its input.
func interiorIntersections(edges []Segment) []Point {
	var hits []Point
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if p, ok := edges[i].Intersection(edges[j]); ok {
				hits = append(hits, p)
			}
		}
	}
	return hits
}

func TestFixtureSimplePolygonsHaveNoInteriorIntersections(t *testing.T) {
	for _, name := range []string{"square", "chevron"} {
		name := name
		t.Run(name, func(t *testing.T) {
			edges := loadFixtureEdges(t, name)
			assert.Empty(t, interiorIntersections(edges))
		})
	}
}

func TestFixtureBowtieCrossesItself(t *testing.T) {
	edges := loadFixtureEdges(t, "bowtie")
	hits := interiorIntersections(edges)
	require.Len(t, hits, 1)
	assert.True(t, EqualPoints(Point{1, 1}, hits[0]))
}

func TestFixtureScanlineCrossings(t *testing.T) {
	// Sweep the square at mid height: the two vertical edges cross the
	// scanline at the square's left and right x, and the horizontal edges
	// report their right-most endpoint per the tie-break.
	edges := loadFixtureEdges(t, "square")

	var crossings []float64
	for _, e := range edges {
		if e.IsHorizontal() {
			assert.Equal(t, 2.0, e.HorizontalIntersection(1))
			continue
		}
		crossings = append(crossings, e.HorizontalIntersection(1))
	}
	require.Len(t, crossings, 2)
	left, right := crossings[0], crossings[1]
	if left > right {
		left, right = right, left
	}
	assert.InDelta(t, 0, left, Tolerance)
	assert.InDelta(t, 2, right, Tolerance)
}
